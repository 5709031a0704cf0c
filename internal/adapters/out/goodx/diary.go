package goodx

import (
	"context"
	"net/http"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/query"
)

var diaryFields = query.Fields(
	"uid", "entity_uid", "name", "treating_doctor_uid",
	"service_center_uid", "booking_type_uid", "uuid", "disabled",
)

func (c *Client) ListDiaries(ctx context.Context, session *domain.Session) ([]domain.Diary, error) {
	params, err := listParams(diaryFields, nil, 0)
	if err != nil {
		return nil, err
	}

	return fetchList[domain.Diary](ctx, c, session, request{
		method: http.MethodGet,
		path:   "/diary",
		params: params,
	})
}
