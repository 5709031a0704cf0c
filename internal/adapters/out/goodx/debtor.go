package goodx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/query"
)

var debtorFields = query.Fields(
	"uid", "entity_uid", "name", "surname", "initials",
	"title", "id_type", "id_no", "mobile_no", "email",
	"file_no", "gender", "acc_identifier", "patients",
	"medical_aid_option_uid", "medical_aid_no", "medical_aid_scheme_code",
)

func (c *Client) ListDebtors(ctx context.Context, session *domain.Session, entityUID int64) ([]domain.Debtor, error) {
	params, err := listParams(debtorFields, query.FieldEq("entity_uid", entityUID), c.pageLimit)
	if err != nil {
		return nil, err
	}

	return fetchList[domain.Debtor](ctx, c, session, request{
		method: http.MethodGet,
		path:   "/debtor",
		params: params,
	})
}

func (c *Client) GetDebtor(ctx context.Context, session *domain.Session, debtorUID int64) (*domain.Debtor, error) {
	debtor, err := fetch[*domain.Debtor](ctx, c, session, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/debtor/%d", debtorUID),
	})
	if err != nil {
		return nil, err
	}
	if debtor == nil {
		return nil, fmt.Errorf("%w: debtor %d is missing", domain.ErrMalformed, debtorUID)
	}
	return debtor, nil
}
