package domain

import (
	"errors"
	"time"
)

const (
	DefaultBookingHour     = 9
	DefaultBookingDuration = 15
)

type BookingFormValues struct {
	PatientUID     int64
	BookingTypeUID int64
	Hour           int
	Minute         int
	Duration       int
	Reason         string
}

func (v BookingFormValues) TimeString() string {
	return time.Date(0, 1, 1, v.Hour, v.Minute, 0, 0, time.UTC).Format("15:04")
}

// StartTime совмещает выбранную дату и время дня в одну отметку
func (v BookingFormValues) StartTime(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), v.Hour, v.Minute, 0, 0, loc)
}

type BookingForm struct {
	Diary           Diary
	Date            time.Time
	Booking         *BookingDraft
	Patients        []Patient
	BookingTypes    []BookingType
	BookingStatuses []BookingStatus
	Values          BookingFormValues
	Error           string
}

func (f *BookingForm) Editing() bool {
	return f.Booking != nil
}

// NewBookingFormValues - значения формы по умолчанию для новой записи
func NewBookingFormValues(patients []Patient, types []BookingType) BookingFormValues {
	values := BookingFormValues{
		Hour:     DefaultBookingHour,
		Duration: DefaultBookingDuration,
	}
	if len(patients) > 0 {
		values.PatientUID = patients[0].UID
	}
	if len(types) > 0 {
		values.BookingTypeUID = types[0].UID
	}
	return values
}

// DraftFormValues заполняет форму из существующей записи
func DraftFormValues(draft BookingDraft, loc *time.Location) BookingFormValues {
	values := BookingFormValues{
		PatientUID:     draft.PatientUID,
		BookingTypeUID: draft.BookingTypeUID,
		Hour:           DefaultBookingHour,
		Duration:       draft.Duration,
		Reason:         draft.Reason,
	}
	if !draft.StartTime.IsZero() {
		start := draft.StartTime.Date.In(loc)
		values.Hour = start.Hour()
		values.Minute = start.Minute()
	}
	if values.Duration == 0 {
		values.Duration = DefaultBookingDuration
	}
	return values
}

// ReferenceLoadError - сбой загрузки одного из справочников формы
type ReferenceLoadError struct {
	Resource string
	Err      error
}

func (e *ReferenceLoadError) Error() string {
	return "failed to fetch " + e.Resource + ": " + e.Err.Error()
}

func (e *ReferenceLoadError) Unwrap() error {
	return e.Err
}

// BookingFormErrorMessage - текст ошибки, который видит пользователь в форме
func BookingFormErrorMessage(err error, editing bool) string {
	var loadErr *ReferenceLoadError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &loadErr):
		return "Failed to fetch " + loadErr.Resource
	case errors.Is(err, ErrNoBookingStatus):
		return "No valid booking status found"
	case errors.Is(err, ErrNoDiary):
		return "No diary selected"
	case errors.Is(err, ErrBookingNotFound):
		return "Booking not found"
	case errors.Is(err, ErrValidation):
		return err.Error()
	case editing:
		return "Failed to update booking: " + err.Error()
	default:
		return "Failed to create booking: " + err.Error()
	}
}
