package goodx

import (
	"context"
	"net/http"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/query"
)

var bookingTypeFields = query.Fields(
	"uid", "entity_uid", "diary_uid", "name",
	"booking_status_uid", "disabled", "uuid",
)

var bookingStatusFields = query.Fields(
	"uid", "entity_uid", "diary_uid", "name",
	"next_booking_status_uid", "is_arrived", "is_final", "disabled",
)

// DiaryReferenceFilter - активные справочники дневника: entity AND diary AND NOT disabled
func DiaryReferenceFilter(entityUID, diaryUID int64) query.Expr {
	return query.And(
		query.FieldEq("entity_uid", entityUID),
		query.FieldEq("diary_uid", diaryUID),
		query.Not(query.I("disabled")),
	)
}

func (c *Client) ListBookingTypes(ctx context.Context, session *domain.Session, entityUID, diaryUID int64) ([]domain.BookingType, error) {
	params, err := listParams(bookingTypeFields, DiaryReferenceFilter(entityUID, diaryUID), 0)
	if err != nil {
		return nil, err
	}

	return fetchList[domain.BookingType](ctx, c, session, request{
		method: http.MethodGet,
		path:   "/booking_type",
		params: params,
	})
}

func (c *Client) ListBookingStatuses(ctx context.Context, session *domain.Session, entityUID, diaryUID int64) ([]domain.BookingStatus, error) {
	params, err := listParams(bookingStatusFields, DiaryReferenceFilter(entityUID, diaryUID), 0)
	if err != nil {
		return nil, err
	}

	return fetchList[domain.BookingStatus](ctx, c, session, request{
		method: http.MethodGet,
		path:   "/booking_status",
		params: params,
	})
}
