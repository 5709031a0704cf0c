package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/goodx-diary-web/internal/adapters/out/logger"
	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/in"
)

var (
	testPatients = []domain.Patient{{UID: 100, Name: "Ann"}, {UID: 101, Name: "Bob"}}
	testTypes    = []domain.BookingType{{UID: 20, Name: "Consult"}, {UID: 21, Name: "Follow-up", BookingStatusUID: int64Ptr(7)}}
	testStatuses = []domain.BookingStatus{{UID: 3}, {UID: 9}}
)

func newTestBookingFormService(api *MockBookingAPI) *BookingFormService {
	nop := logger.NewNopLogger()
	return NewBookingFormService(api, NewReferenceDataService(api, nil, nop), nop)
}

func TestBookingFormService_Open_NewBookingDefaults(t *testing.T) {
	ctx := context.Background()
	api := &MockBookingAPI{}
	service := newTestBookingFormService(api)

	api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()
	api.On("ListPatients", ctx, testSession, int64(2)).Return(testPatients, nil).Once()
	api.On("ListBookingTypes", ctx, testSession, int64(2), int64(5)).Return(testTypes, nil).Once()
	api.On("ListBookingStatuses", ctx, testSession, int64(2), int64(5)).Return(testStatuses, nil).Once()

	form, err := service.Open(ctx, testSession, in.OpenBookingFormInput{DiaryUID: 5, Date: testDate})

	require.NoError(t, err)
	assert.False(t, form.Editing())
	assert.Equal(t, domain.BookingFormValues{
		PatientUID:     100,
		BookingTypeUID: 20,
		Hour:           9,
		Minute:         0,
		Duration:       15,
		Reason:         "",
	}, form.Values)
	assert.Equal(t, "09:00", form.Values.TimeString())
	api.AssertExpectations(t)
}

func TestBookingFormService_Open_EditPrefills(t *testing.T) {
	ctx := context.Background()
	api := &MockBookingAPI{}
	service := newTestBookingFormService(api)

	start := time.Date(2024, 3, 1, 14, 30, 0, 0, config.TimeZone)
	booking := domain.Booking{
		UID:            55,
		EntityUID:      2,
		DiaryUID:       5,
		BookingTypeUID: 21,
		PatientUID:     101,
		Duration:       45,
		Reason:         "Checkup",
	}
	booking.StartTime.Date = start

	api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()
	api.On("ListBookings", ctx, testSession, int64(5), testDate).Return([]domain.Booking{booking}, nil).Once()
	api.On("ListPatients", ctx, testSession, int64(2)).Return(testPatients, nil).Once()
	api.On("ListBookingTypes", ctx, testSession, int64(2), int64(5)).Return(testTypes, nil).Once()
	api.On("ListBookingStatuses", ctx, testSession, int64(2), int64(5)).Return(testStatuses, nil).Once()

	form, err := service.Open(ctx, testSession, in.OpenBookingFormInput{DiaryUID: 5, Date: testDate, BookingUID: int64Ptr(55)})

	require.NoError(t, err)
	require.True(t, form.Editing())
	assert.Equal(t, int64(55), form.Booking.UID)
	assert.Equal(t, domain.BookingFormValues{
		PatientUID:     101,
		BookingTypeUID: 21,
		Hour:           14,
		Minute:         30,
		Duration:       45,
		Reason:         "Checkup",
	}, form.Values)
}

func TestBookingFormService_Open_AbortsOnFirstFailure(t *testing.T) {
	ctx := context.Background()
	api := &MockBookingAPI{}
	service := newTestBookingFormService(api)

	api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()
	api.On("ListPatients", ctx, testSession, int64(2)).Return(testPatients, nil).Once()
	api.On("ListBookingTypes", ctx, testSession, int64(2), int64(5)).Return(nil, errors.New("boom")).Once()

	form, err := service.Open(ctx, testSession, in.OpenBookingFormInput{DiaryUID: 5, Date: testDate})

	require.Error(t, err)
	var loadErr *domain.ReferenceLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "booking types", loadErr.Resource)
	assert.Equal(t, "Failed to fetch booking types", form.Error)
	api.AssertNotCalled(t, "ListBookingStatuses", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingFormService_Open_UnknownDiary(t *testing.T) {
	ctx := context.Background()
	api := &MockBookingAPI{}
	service := newTestBookingFormService(api)

	api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()

	_, err := service.Open(ctx, testSession, in.OpenBookingFormInput{DiaryUID: 42, Date: testDate})
	assert.ErrorIs(t, err, domain.ErrNoDiary)

	_, err = service.Open(ctx, testSession, in.OpenBookingFormInput{Date: testDate})
	assert.ErrorIs(t, err, domain.ErrNoDiary)
}

func TestBookingFormService_Submit_StatusFromBookingType(t *testing.T) {
	ctx := context.Background()
	api := &MockBookingAPI{}
	service := newTestBookingFormService(api)

	values := domain.BookingFormValues{PatientUID: 100, BookingTypeUID: 21, Hour: 10, Minute: 15, Duration: 30, Reason: "Pain"}
	expectedStart := time.Date(2024, 3, 1, 10, 15, 0, 0, config.TimeZone)

	api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()
	api.On("ListBookingTypes", ctx, testSession, int64(2), int64(5)).Return(testTypes, nil).Once()
	api.On("ListBookingStatuses", ctx, testSession, int64(2), int64(5)).Return(testStatuses, nil).Once()
	api.On("CreateBooking", ctx, testSession, mock.MatchedBy(func(b domain.NewBooking) bool {
		return b.BookingStatusUID == 7 &&
			b.EntityUID == 2 &&
			b.DiaryUID == 5 &&
			b.BookingTypeUID == 21 &&
			b.PatientUID == 100 &&
			b.Duration == 30 &&
			b.Reason == "Pain" &&
			!b.Cancelled &&
			b.StartTime.Date.Equal(expectedStart)
	})).Return(nil).Once()

	err := service.Submit(ctx, testSession, in.SubmitBookingFormInput{DiaryUID: 5, Date: testDate, Values: values})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestBookingFormService_Submit_StatusFallsBackToFirst(t *testing.T) {
	ctx := context.Background()
	api := &MockBookingAPI{}
	service := newTestBookingFormService(api)

	values := domain.BookingFormValues{PatientUID: 100, BookingTypeUID: 20, Hour: 9, Duration: 15}

	api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()
	api.On("ListBookingTypes", ctx, testSession, int64(2), int64(5)).Return(testTypes, nil).Once()
	api.On("ListBookingStatuses", ctx, testSession, int64(2), int64(5)).Return(testStatuses, nil).Once()
	api.On("CreateBooking", ctx, testSession, mock.MatchedBy(func(b domain.NewBooking) bool {
		return b.BookingStatusUID == 3
	})).Return(nil).Once()

	err := service.Submit(ctx, testSession, in.SubmitBookingFormInput{DiaryUID: 5, Date: testDate, Values: values})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestBookingFormService_Submit_NoStatusSendsNothing(t *testing.T) {
	ctx := context.Background()
	api := &MockBookingAPI{}
	service := newTestBookingFormService(api)

	values := domain.BookingFormValues{PatientUID: 100, BookingTypeUID: 20, Hour: 9, Duration: 15}

	api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()
	api.On("ListBookingTypes", ctx, testSession, int64(2), int64(5)).Return(testTypes, nil).Once()
	api.On("ListBookingStatuses", ctx, testSession, int64(2), int64(5)).Return([]domain.BookingStatus{}, nil).Once()

	err := service.Submit(ctx, testSession, in.SubmitBookingFormInput{DiaryUID: 5, Date: testDate, Values: values})

	assert.ErrorIs(t, err, domain.ErrNoBookingStatus)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "No valid booking status found", domain.BookingFormErrorMessage(err, false))
	api.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingFormService_Submit_UpdateSendsMutableFieldsOnly(t *testing.T) {
	ctx := context.Background()
	api := &MockBookingAPI{}
	service := newTestBookingFormService(api)

	values := domain.BookingFormValues{PatientUID: 101, BookingTypeUID: 21, Hour: 11, Minute: 45, Duration: 20, Reason: "Review"}
	expected := domain.BookingUpdate{
		UID:        55,
		Duration:   20,
		PatientUID: 101,
		Reason:     "Review",
	}
	expectedStart := time.Date(2024, 3, 1, 11, 45, 0, 0, config.TimeZone)

	api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()
	api.On("ListBookingTypes", ctx, testSession, int64(2), int64(5)).Return(testTypes, nil).Once()
	api.On("ListBookingStatuses", ctx, testSession, int64(2), int64(5)).Return(testStatuses, nil).Once()
	api.On("UpdateBooking", ctx, testSession, int64(55), mock.MatchedBy(func(u domain.BookingUpdate) bool {
		return u.UID == expected.UID &&
			u.Duration == expected.Duration &&
			u.PatientUID == expected.PatientUID &&
			u.Reason == expected.Reason &&
			!u.Cancelled &&
			u.StartTime.Date.Equal(expectedStart)
	})).Return(nil).Once()

	err := service.Submit(ctx, testSession, in.SubmitBookingFormInput{
		DiaryUID:   5,
		Date:       testDate,
		BookingUID: int64Ptr(55),
		Values:     values,
	})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestBookingFormService_Submit_Failures(t *testing.T) {
	ctx := context.Background()
	values := domain.BookingFormValues{PatientUID: 100, BookingTypeUID: 21, Hour: 9, Duration: 15}

	t.Run("missing patient", func(t *testing.T) {
		api := &MockBookingAPI{}
		service := newTestBookingFormService(api)
		api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()

		err := service.Submit(ctx, testSession, in.SubmitBookingFormInput{
			DiaryUID: 5,
			Date:     testDate,
			Values:   domain.BookingFormValues{BookingTypeUID: 21, Duration: 15},
		})
		assert.ErrorIs(t, err, domain.ErrNoPatient)
	})

	t.Run("upstream rejects create", func(t *testing.T) {
		api := &MockBookingAPI{}
		service := newTestBookingFormService(api)
		api.On("ListDiaries", ctx, testSession).Return(testDiaries, nil).Once()
		api.On("ListBookingTypes", ctx, testSession, int64(2), int64(5)).Return(testTypes, nil).Once()
		api.On("ListBookingStatuses", ctx, testSession, int64(2), int64(5)).Return(testStatuses, nil).Once()
		api.On("CreateBooking", ctx, testSession, mock.Anything).Return(errors.New("slot taken")).Once()

		err := service.Submit(ctx, testSession, in.SubmitBookingFormInput{DiaryUID: 5, Date: testDate, Values: values})

		require.Error(t, err)
		assert.Equal(t, "Failed to create booking: slot taken", domain.BookingFormErrorMessage(err, false))
	})
}
