package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestDeriveBookingStatus(t *testing.T) {
	statuses := []BookingStatus{{UID: 3}, {UID: 9}}

	tests := []struct {
		name        string
		bookingType *BookingType
		statuses    []BookingStatus
		want        int64
		wantErr     error
	}{
		{"type default", &BookingType{UID: 1, BookingStatusUID: int64Ptr(7)}, statuses, 7, nil},
		{"first status", &BookingType{UID: 1}, statuses, 3, nil},
		{"zero default falls back", &BookingType{UID: 1, BookingStatusUID: int64Ptr(0)}, statuses, 3, nil},
		{"unknown type", nil, statuses, 3, nil},
		{"nothing", &BookingType{UID: 1}, nil, 0, ErrNoBookingStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveBookingStatus(tt.bookingType, tt.statuses)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActiveBookings(t *testing.T) {
	bookings := []Booking{{UID: 1}, {UID: 2, Cancelled: true}, {UID: 3}}
	assert.Equal(t, []Booking{{UID: 1}, {UID: 3}}, ActiveBookings(bookings))

	active := []Booking{{UID: 1}, {UID: 3}}
	assert.Equal(t, active, ActiveBookings(active))

	assert.Empty(t, ActiveBookings(nil))
}

func TestBooking_Draft(t *testing.T) {
	booking := Booking{
		UID:              5,
		EntityUID:        2,
		DiaryUID:         7,
		BookingTypeUID:   8,
		BookingStatusUID: 9,
		PatientUID:       10,
		Duration:         30,
		Reason:           "Checkup",
		PatientName:      "Ann",
	}

	draft := booking.Draft()
	assert.Equal(t, int64(7), draft.DiaryUID)
	assert.Equal(t, int64(8), draft.BookingTypeUID)
	assert.Equal(t, "Checkup", draft.Reason)
}

func TestBooking_Names(t *testing.T) {
	booking := Booking{PatientName: "Ann", PatientSurname: "Smith", DebtorSurname: "Jones"}
	assert.Equal(t, "Ann Smith", booking.PatientFullName())
	assert.Equal(t, "Jones", booking.DebtorFullName())
}

func TestFindDiary(t *testing.T) {
	diaries := []Diary{{UID: 1}, {UID: 5}}

	diary, ok := FindDiary(diaries, int64Ptr(5))
	require.True(t, ok)
	assert.Equal(t, int64(5), diary.UID)

	diary, ok = FindDiary(diaries, nil)
	require.True(t, ok)
	assert.Equal(t, int64(1), diary.UID)

	diary, ok = FindDiary(diaries, int64Ptr(42))
	require.True(t, ok)
	assert.Equal(t, int64(1), diary.UID)

	_, ok = FindDiary(nil, nil)
	assert.False(t, ok)
}

func TestNewBookingFormValues(t *testing.T) {
	values := NewBookingFormValues(
		[]Patient{{UID: 100}, {UID: 101}},
		[]BookingType{{UID: 20}, {UID: 21}},
	)

	assert.Equal(t, BookingFormValues{PatientUID: 100, BookingTypeUID: 20, Hour: 9, Duration: 15}, values)
	assert.Equal(t, "09:00", values.TimeString())

	empty := NewBookingFormValues(nil, nil)
	assert.Zero(t, empty.PatientUID)
	assert.Equal(t, 15, empty.Duration)
}

func TestBookingFormValues_StartTime(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	values := BookingFormValues{Hour: 14, Minute: 45}

	assert.Equal(t, time.Date(2024, 3, 1, 14, 45, 0, 0, loc), values.StartTime(date, loc))
}

func TestBookingFormErrorMessage(t *testing.T) {
	assert.Equal(t, "", BookingFormErrorMessage(nil, false))
	assert.Equal(t, "Failed to fetch patients", BookingFormErrorMessage(&ReferenceLoadError{Resource: "patients", Err: errors.New("x")}, false))
	assert.Equal(t, "No valid booking status found", BookingFormErrorMessage(ErrNoBookingStatus, false))
	assert.Equal(t, "No diary selected", BookingFormErrorMessage(ErrNoDiary, true))
	assert.Equal(t, "Failed to update booking: boom", BookingFormErrorMessage(errors.New("boom"), true))
	assert.Equal(t, "Failed to create booking: boom", BookingFormErrorMessage(errors.New("boom"), false))
}
