package services

import (
	"context"
	"time"

	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/json_types"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/in"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

type BookingFormService struct {
	bookingAPI    out.BookingAPIPort
	referenceData *ReferenceDataService
	logger        out.LoggerPort
}

func NewBookingFormService(
	bookingAPI out.BookingAPIPort,
	referenceData *ReferenceDataService,
	logger out.LoggerPort,
) *BookingFormService {
	return &BookingFormService{
		bookingAPI:    bookingAPI,
		referenceData: referenceData,
		logger:        logger.WithModule("BookingFormService"),
	}
}

// Open готовит форму записи. Справочники грузятся последовательно,
// сбой любого из них прерывает загрузку остальных
func (s *BookingFormService) Open(ctx context.Context, session *domain.Session, input in.OpenBookingFormInput) (*domain.BookingForm, error) {
	diary, err := s.resolveDiary(ctx, session, input.DiaryUID)
	if err != nil {
		return nil, err
	}

	form := &domain.BookingForm{
		Diary: *diary,
		Date:  input.Date,
	}

	if input.BookingUID != nil {
		booking, err := s.findBooking(ctx, session, diary.UID, input.Date, *input.BookingUID)
		if err != nil {
			form.Error = domain.BookingFormErrorMessage(err, true)
			return form, err
		}
		draft := booking.Draft()
		form.Booking = &draft
	}

	if err := s.loadReferences(ctx, session, form); err != nil {
		form.Error = domain.BookingFormErrorMessage(err, form.Editing())
		return form, err
	}

	if form.Editing() {
		form.Values = domain.DraftFormValues(*form.Booking, config.TimeZone)
	} else {
		form.Values = domain.NewBookingFormValues(form.Patients, form.BookingTypes)
	}

	return form, nil
}

// Submit создает или изменяет запись. Статус выводится из типа записи,
// без статуса запрос в GoodX не отправляется
func (s *BookingFormService) Submit(ctx context.Context, session *domain.Session, input in.SubmitBookingFormInput) error {
	editing := input.BookingUID != nil

	diary, err := s.resolveDiary(ctx, session, input.DiaryUID)
	if err != nil {
		return err
	}

	if input.Values.PatientUID == 0 {
		return domain.ErrNoPatient
	}

	types, err := s.referenceData.BookingTypes(ctx, session, diary.EntityUID, diary.UID)
	if err != nil {
		return &domain.ReferenceLoadError{Resource: "booking types", Err: err}
	}

	statuses, err := s.referenceData.BookingStatuses(ctx, session, diary.EntityUID, diary.UID)
	if err != nil {
		return &domain.ReferenceLoadError{Resource: "booking statuses", Err: err}
	}

	bookingType, _ := domain.FindBookingType(types, input.Values.BookingTypeUID)
	statusUID, err := domain.DeriveBookingStatus(bookingType, statuses)
	if err != nil {
		s.logger.Warn("booking_form.submit.no_status", out.LogFields{
			"diaryUid":       diary.UID,
			"bookingTypeUid": input.Values.BookingTypeUID,
		})
		return err
	}

	startTime := json_types.NewLocalDateTime(input.Values.StartTime(input.Date, config.TimeZone))

	if editing {
		err = s.bookingAPI.UpdateBooking(ctx, session, *input.BookingUID, domain.BookingUpdate{
			UID:        *input.BookingUID,
			StartTime:  startTime,
			Duration:   input.Values.Duration,
			PatientUID: input.Values.PatientUID,
			Reason:     input.Values.Reason,
		})
	} else {
		err = s.bookingAPI.CreateBooking(ctx, session, domain.NewBooking{
			EntityUID:        diary.EntityUID,
			DiaryUID:         diary.UID,
			BookingTypeUID:   input.Values.BookingTypeUID,
			BookingStatusUID: statusUID,
			StartTime:        startTime,
			Duration:         input.Values.Duration,
			PatientUID:       input.Values.PatientUID,
			Reason:           input.Values.Reason,
		})
	}
	if err != nil {
		s.logger.Error("booking_form.submit.failed", out.LogFields{
			"diaryUid": diary.UID,
			"editing":  editing,
			"error":    err.Error(),
		})
		return err
	}

	s.logger.Info("booking_form.submit.success", out.LogFields{
		"diaryUid":  diary.UID,
		"editing":   editing,
		"startTime": startTime.Date,
	})
	return nil
}

func (s *BookingFormService) loadReferences(ctx context.Context, session *domain.Session, form *domain.BookingForm) error {
	entityUID := form.Diary.EntityUID
	diaryUID := form.Diary.UID

	patients, err := s.referenceData.Patients(ctx, session, entityUID)
	if err != nil {
		return s.referenceFailed("patients", err)
	}
	form.Patients = patients

	types, err := s.referenceData.BookingTypes(ctx, session, entityUID, diaryUID)
	if err != nil {
		return s.referenceFailed("booking types", err)
	}
	form.BookingTypes = types

	statuses, err := s.referenceData.BookingStatuses(ctx, session, entityUID, diaryUID)
	if err != nil {
		return s.referenceFailed("booking statuses", err)
	}
	form.BookingStatuses = statuses

	return nil
}

func (s *BookingFormService) referenceFailed(resource string, err error) error {
	s.logger.Error("booking_form.references.fetch_failed", out.LogFields{
		"resource": resource,
		"error":    err.Error(),
	})
	return &domain.ReferenceLoadError{Resource: resource, Err: err}
}

// resolveDiary ищет дневник строго по uid, форма без дневника не открывается
func (s *BookingFormService) resolveDiary(ctx context.Context, session *domain.Session, diaryUID int64) (*domain.Diary, error) {
	if diaryUID == 0 {
		return nil, domain.ErrNoDiary
	}

	diaries, err := s.bookingAPI.ListDiaries(ctx, session)
	if err != nil {
		return nil, err
	}

	for i := range diaries {
		if diaries[i].UID == diaryUID {
			return &diaries[i], nil
		}
	}
	return nil, domain.ErrNoDiary
}

func (s *BookingFormService) findBooking(ctx context.Context, session *domain.Session, diaryUID int64, date time.Time, bookingUID int64) (*domain.Booking, error) {
	bookings, err := s.bookingAPI.ListBookings(ctx, session, diaryUID, date)
	if err != nil {
		return nil, err
	}

	booking, ok := domain.FindBooking(domain.ActiveBookings(bookings), bookingUID)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}
