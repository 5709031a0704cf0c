package in

import (
	"context"
	"time"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
)

type OpenBookingFormInput struct {
	DiaryUID   int64
	Date       time.Time
	BookingUID *int64
}

type SubmitBookingFormInput struct {
	DiaryUID   int64
	Date       time.Time
	BookingUID *int64
	Values     domain.BookingFormValues
}

type BookingFormUseCase interface {
	// Загрузка справочников формы: пациенты, типы и статусы записей
	Open(ctx context.Context, session *domain.Session, input OpenBookingFormInput) (*domain.BookingForm, error)

	// Создание или изменение записи
	Submit(ctx context.Context, session *domain.Session, input SubmitBookingFormInput) error
}
