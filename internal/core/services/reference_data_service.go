package services

import (
	"context"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

// ReferenceDataService отдает справочники формы записи через кэш, если он включен
type ReferenceDataService struct {
	bookingAPI out.BookingAPIPort
	cachePort  out.CachePort
	logger     out.LoggerPort
}

func NewReferenceDataService(
	bookingAPI out.BookingAPIPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
) *ReferenceDataService {
	return &ReferenceDataService{
		bookingAPI: bookingAPI,
		cachePort:  cachePort,
		logger:     logger.WithModule("ReferenceDataService"),
	}
}

func (s *ReferenceDataService) Patients(ctx context.Context, session *domain.Session, entityUID int64) ([]domain.Patient, error) {
	key := out.ReferenceKey{SessionID: session.ID, EntityUID: entityUID}

	if s.cachePort != nil {
		if patients, exists := s.cachePort.GetPatients(ctx, key); exists {
			return patients, nil
		}
	}

	patients, err := s.bookingAPI.ListPatients(ctx, session, entityUID)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil {
		s.cachePort.StorePatients(ctx, key, patients)
	}
	return patients, nil
}

func (s *ReferenceDataService) BookingTypes(ctx context.Context, session *domain.Session, entityUID, diaryUID int64) ([]domain.BookingType, error) {
	key := out.ReferenceKey{SessionID: session.ID, EntityUID: entityUID, DiaryUID: diaryUID}

	if s.cachePort != nil {
		if types, exists := s.cachePort.GetBookingTypes(ctx, key); exists {
			return types, nil
		}
	}

	types, err := s.bookingAPI.ListBookingTypes(ctx, session, entityUID, diaryUID)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil {
		s.cachePort.StoreBookingTypes(ctx, key, types)
	}
	return types, nil
}

func (s *ReferenceDataService) BookingStatuses(ctx context.Context, session *domain.Session, entityUID, diaryUID int64) ([]domain.BookingStatus, error) {
	key := out.ReferenceKey{SessionID: session.ID, EntityUID: entityUID, DiaryUID: diaryUID}

	if s.cachePort != nil {
		if statuses, exists := s.cachePort.GetBookingStatuses(ctx, key); exists {
			return statuses, nil
		}
	}

	statuses, err := s.bookingAPI.ListBookingStatuses(ctx, session, entityUID, diaryUID)
	if err != nil {
		return nil, err
	}

	if s.cachePort != nil {
		s.cachePort.StoreBookingStatuses(ctx, key, statuses)
	}
	return statuses, nil
}

// Сброс кэша по событиям из RabbitMQ

func (s *ReferenceDataService) InvalidatePatientsCache(ctx context.Context, entityUID int64) {
	if s.cachePort == nil {
		return
	}
	s.cachePort.InvalidatePatients(ctx, entityUID)
}

func (s *ReferenceDataService) InvalidateBookingTypesCache(ctx context.Context, entityUID, diaryUID int64) {
	if s.cachePort == nil {
		return
	}
	s.cachePort.InvalidateBookingTypes(ctx, entityUID, diaryUID)
}

func (s *ReferenceDataService) InvalidateBookingStatusesCache(ctx context.Context, entityUID, diaryUID int64) {
	if s.cachePort == nil {
		return
	}
	s.cachePort.InvalidateBookingStatuses(ctx, entityUID, diaryUID)
}

func (s *ReferenceDataService) InvalidateAllCache(ctx context.Context) {
	if s.cachePort == nil {
		return
	}
	s.logger.Info("cache.invalidate_all", out.LogFields{})
	s.cachePort.InvalidateAll(ctx)
}
