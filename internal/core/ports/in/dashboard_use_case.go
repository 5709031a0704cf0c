package in

import (
	"context"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
)

type DashboardUseCase interface {
	// Снимок расписания: дневники, выбранный дневник, записи на дату
	Load(ctx context.Context, session *domain.Session, query domain.DashboardQuery) domain.Dashboard

	// Мягкое удаление записи (cancelled = true)
	DeleteBooking(ctx context.Context, session *domain.Session, bookingUID int64) error
}
