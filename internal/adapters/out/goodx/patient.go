package goodx

import (
	"context"
	"net/http"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/query"
)

var patientFields = query.Fields(
	"uid", "entity_uid", "debtor_uid", "name", "surname",
	"initials", "title", "id_type", "id_no", "date_of_birth",
	"mobile_no", "email", "file_no", "gender",
)

// Пагинация дальше первой страницы не поддерживается
func (c *Client) ListPatients(ctx context.Context, session *domain.Session, entityUID int64) ([]domain.Patient, error) {
	params, err := listParams(patientFields, query.FieldEq("entity_uid", entityUID), c.pageLimit)
	if err != nil {
		return nil, err
	}

	return fetchList[domain.Patient](ctx, c, session, request{
		method: http.MethodGet,
		path:   "/patient",
		params: params,
	})
}
