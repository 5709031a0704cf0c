package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
)

type MockBookingAPI struct {
	mock.Mock
}

func (m *MockBookingAPI) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockBookingAPI) ListDiaries(ctx context.Context, session *domain.Session) ([]domain.Diary, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Diary), args.Error(1)
}

func (m *MockBookingAPI) ListBookings(ctx context.Context, session *domain.Session, diaryUID int64, date time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, session, diaryUID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingAPI) CreateBooking(ctx context.Context, session *domain.Session, booking domain.NewBooking) error {
	args := m.Called(ctx, session, booking)
	return args.Error(0)
}

func (m *MockBookingAPI) UpdateBooking(ctx context.Context, session *domain.Session, bookingUID int64, update domain.BookingUpdate) error {
	args := m.Called(ctx, session, bookingUID, update)
	return args.Error(0)
}

func (m *MockBookingAPI) DeleteBooking(ctx context.Context, session *domain.Session, bookingUID int64) error {
	args := m.Called(ctx, session, bookingUID)
	return args.Error(0)
}

func (m *MockBookingAPI) ListBookingTypes(ctx context.Context, session *domain.Session, entityUID, diaryUID int64) ([]domain.BookingType, error) {
	args := m.Called(ctx, session, entityUID, diaryUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingType), args.Error(1)
}

func (m *MockBookingAPI) ListBookingStatuses(ctx context.Context, session *domain.Session, entityUID, diaryUID int64) ([]domain.BookingStatus, error) {
	args := m.Called(ctx, session, entityUID, diaryUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingStatus), args.Error(1)
}

func (m *MockBookingAPI) ListPatients(ctx context.Context, session *domain.Session, entityUID int64) ([]domain.Patient, error) {
	args := m.Called(ctx, session, entityUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Patient), args.Error(1)
}

func (m *MockBookingAPI) ListDebtors(ctx context.Context, session *domain.Session, entityUID int64) ([]domain.Debtor, error) {
	args := m.Called(ctx, session, entityUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debtor), args.Error(1)
}

func (m *MockBookingAPI) GetDebtor(ctx context.Context, session *domain.Session, debtorUID int64) (*domain.Debtor, error) {
	args := m.Called(ctx, session, debtorUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debtor), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionStore) Set(ctx context.Context, session domain.Session, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
