package out

import (
	"context"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
)

// ReferenceKey - ключ справочников одной сессии в рамках организации и дневника.
// Для пациентов DiaryUID не используется
type ReferenceKey struct {
	SessionID string
	EntityUID int64
	DiaryUID  int64
}

type CachePort interface {
	// Пациенты организации
	GetPatients(ctx context.Context, key ReferenceKey) ([]domain.Patient, bool)
	StorePatients(ctx context.Context, key ReferenceKey, patients []domain.Patient)
	InvalidatePatients(ctx context.Context, entityUID int64)

	// Типы записей дневника
	GetBookingTypes(ctx context.Context, key ReferenceKey) ([]domain.BookingType, bool)
	StoreBookingTypes(ctx context.Context, key ReferenceKey, types []domain.BookingType)
	InvalidateBookingTypes(ctx context.Context, entityUID, diaryUID int64)

	// Статусы записей дневника
	GetBookingStatuses(ctx context.Context, key ReferenceKey) ([]domain.BookingStatus, bool)
	StoreBookingStatuses(ctx context.Context, key ReferenceKey, statuses []domain.BookingStatus)
	InvalidateBookingStatuses(ctx context.Context, entityUID, diaryUID int64)

	InvalidateAll(ctx context.Context)
}
