package out

import (
	"context"
	"time"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
)

type BookingAPIPort interface {
	// Сессия
	Login(ctx context.Context, username, password string) (*domain.Session, error)

	// Дневники и записи
	ListDiaries(ctx context.Context, session *domain.Session) ([]domain.Diary, error)
	ListBookings(ctx context.Context, session *domain.Session, diaryUID int64, date time.Time) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, session *domain.Session, booking domain.NewBooking) error
	UpdateBooking(ctx context.Context, session *domain.Session, bookingUID int64, update domain.BookingUpdate) error
	DeleteBooking(ctx context.Context, session *domain.Session, bookingUID int64) error

	// Справочники дневника
	ListBookingTypes(ctx context.Context, session *domain.Session, entityUID, diaryUID int64) ([]domain.BookingType, error)
	ListBookingStatuses(ctx context.Context, session *domain.Session, entityUID, diaryUID int64) ([]domain.BookingStatus, error)

	// Пациенты и плательщики
	ListPatients(ctx context.Context, session *domain.Session, entityUID int64) ([]domain.Patient, error)
	ListDebtors(ctx context.Context, session *domain.Session, entityUID int64) ([]domain.Debtor, error)
	GetDebtor(ctx context.Context, session *domain.Session, debtorUID int64) (*domain.Debtor, error)
}
