package goodx

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/json_types"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
	"github.com/suchimauz/goodx-diary-web/internal/core/query"
)

type modelBody struct {
	Model any `json:"model"`
}

var bookingFields = append([]query.Expr{
	query.As(query.I("patient_uid", "name"), "patient_name"),
	query.As(query.I("patient_uid", "surname"), "patient_surname"),
	query.As(query.I("patient_uid", "debtor_uid", "name"), "debtor_name"),
	query.As(query.I("patient_uid", "debtor_uid", "surname"), "debtor_surname"),
}, query.Fields(
	"uid", "entity_uid", "diary_uid", "booking_type_uid",
	"booking_status_uid", "patient_uid", "start_time", "duration",
	"treating_doctor_uid", "reason", "invoice_nr", "cancelled", "uuid",
)...)

// BookingsFilter - записи дневника на дату: diary_uid = D AND date(start_time) = 'YYYY-MM-DD'
func BookingsFilter(diaryUID int64, date time.Time) query.Expr {
	return query.And(
		query.FieldEq("diary_uid", diaryUID),
		query.Eq(query.DateOf(query.I("start_time")), query.L(date.Format(json_types.DateLayout))),
	)
}

func (c *Client) ListBookings(ctx context.Context, session *domain.Session, diaryUID int64, date time.Time) ([]domain.Booking, error) {
	params, err := listParams(bookingFields, BookingsFilter(diaryUID, date), 0)
	if err != nil {
		return nil, err
	}

	bookings, err := fetchList[domain.Booking](ctx, c, session, request{
		method: http.MethodGet,
		path:   "/booking",
		params: params,
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("goodx.booking.list_success", out.LogFields{
		"diaryUid": diaryUID,
		"date":     date.Format(json_types.DateLayout),
		"count":    len(bookings),
	})

	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, session *domain.Session, booking domain.NewBooking) error {
	c.logger.Info("goodx.booking.create", out.LogFields{
		"diaryUid":   booking.DiaryUID,
		"patientUid": booking.PatientUID,
	})

	_, err := fetch[any](ctx, c, session, request{
		method: http.MethodPost,
		path:   "/booking",
		body:   modelBody{Model: booking},
	})
	return err
}

func (c *Client) UpdateBooking(ctx context.Context, session *domain.Session, bookingUID int64, update domain.BookingUpdate) error {
	c.logger.Info("goodx.booking.update", out.LogFields{
		"bookingUid": bookingUID,
	})

	// uid в теле всегда совпадает с uid в пути
	update.UID = bookingUID

	_, err := fetch[any](ctx, c, session, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/booking/%d", bookingUID),
		body:   modelBody{Model: update},
	})
	return err
}

func (c *Client) DeleteBooking(ctx context.Context, session *domain.Session, bookingUID int64) error {
	c.logger.Info("goodx.booking.cancel", out.LogFields{
		"bookingUid": bookingUID,
	})

	_, err := fetch[any](ctx, c, session, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/booking/%d", bookingUID),
		body:   modelBody{Model: domain.BookingCancel{UID: bookingUID, Cancelled: true}},
	})
	return err
}
