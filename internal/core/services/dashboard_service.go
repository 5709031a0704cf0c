package services

import (
	"context"
	"errors"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

const (
	errFetchDiaries  = "Failed to fetch diaries"
	errFetchBookings = "Failed to fetch bookings"
)

type DashboardService struct {
	bookingAPI out.BookingAPIPort
	logger     out.LoggerPort
}

func NewDashboardService(bookingAPI out.BookingAPIPort, logger out.LoggerPort) *DashboardService {
	return &DashboardService{
		bookingAPI: bookingAPI,
		logger:     logger.WithModule("DashboardService"),
	}
}

// Load собирает экран расписания: дневники, выбранный дневник и записи на дату.
// Ошибки загрузки не прерывают рендер, а попадают в Dashboard.Error
func (s *DashboardService) Load(ctx context.Context, session *domain.Session, query domain.DashboardQuery) domain.Dashboard {
	dashboard := domain.Dashboard{
		State: domain.DashboardStateNoDiary,
		Date:  query.Date,
	}

	diaries, err := s.bookingAPI.ListDiaries(ctx, session)
	if err != nil {
		s.logger.Error("dashboard.diaries.fetch_failed", out.LogFields{
			"sessionId": session.ID,
			"error":     err.Error(),
		})
		dashboard.State = domain.DashboardStateError
		dashboard.Error = errFetchDiaries
		dashboard.SessionExpired = errors.Is(err, domain.ErrSessionExpired)
		return dashboard
	}
	dashboard.Diaries = diaries

	diary, ok := domain.FindDiary(diaries, query.DiaryUID)
	if !ok {
		return dashboard
	}
	dashboard.Diary = diary

	if query.Date == nil {
		dashboard.State = domain.DashboardStateNoDate
		return dashboard
	}

	bookings, err := s.bookingAPI.ListBookings(ctx, session, diary.UID, *query.Date)
	if err != nil {
		s.logger.Error("dashboard.bookings.fetch_failed", out.LogFields{
			"sessionId": session.ID,
			"diaryUid":  diary.UID,
			"date":      dashboard.DateString(),
			"error":     err.Error(),
		})
		dashboard.State = domain.DashboardStateError
		dashboard.Error = errFetchBookings
		dashboard.SessionExpired = errors.Is(err, domain.ErrSessionExpired)
		return dashboard
	}

	dashboard.Bookings = domain.ActiveBookings(bookings)
	dashboard.State = domain.DashboardStateReady

	// Подтверждение удаления возможно только для показанной записи
	if query.ConfirmDeleteUID != nil {
		if booking, found := domain.FindBooking(dashboard.Bookings, *query.ConfirmDeleteUID); found {
			dashboard.PendingDelete = booking
		}
	}

	s.logger.Debug("dashboard.loaded", out.LogFields{
		"diaryUid":      diary.UID,
		"date":          dashboard.DateString(),
		"bookingsCount": len(dashboard.Bookings),
	})
	return dashboard
}

func (s *DashboardService) DeleteBooking(ctx context.Context, session *domain.Session, bookingUID int64) error {
	if err := s.bookingAPI.DeleteBooking(ctx, session, bookingUID); err != nil {
		s.logger.Error("dashboard.booking.delete_failed", out.LogFields{
			"bookingUid": bookingUID,
			"error":      err.Error(),
		})
		return err
	}

	s.logger.Info("dashboard.booking.deleted", out.LogFields{
		"bookingUid": bookingUID,
	})
	return nil
}
