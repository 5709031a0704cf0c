package rabbitmq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReferenceCacheUseCase struct {
	mock.Mock
}

func (m *MockReferenceCacheUseCase) InvalidatePatientsCache(ctx context.Context, entityUID int64) {
	m.Called(ctx, entityUID)
}

func (m *MockReferenceCacheUseCase) InvalidateBookingTypesCache(ctx context.Context, entityUID, diaryUID int64) {
	m.Called(ctx, entityUID, diaryUID)
}

func (m *MockReferenceCacheUseCase) InvalidateBookingStatusesCache(ctx context.Context, entityUID, diaryUID int64) {
	m.Called(ctx, entityUID, diaryUID)
}

func (m *MockReferenceCacheUseCase) InvalidateAllCache(ctx context.Context) {
	m.Called(ctx)
}

func TestParseCacheMessageRoutingKey(t *testing.T) {
	key, err := parseCacheMessageRoutingKey("goodx.goodx-diary-web.booking_type.7.invalidate")

	require.NoError(t, err)
	assert.Equal(t, CacheMessageRoutingKey{
		Source:       "goodx",
		Receiver:     "goodx-diary-web",
		ResourceType: CacheHitResourceTypeBookingType,
		ResourceID:   "7",
		CacheHitType: CacheHitTypeInvalidate,
	}, key)

	_, err = parseCacheMessageRoutingKey("goodx.patient.invalidate")
	assert.ErrorIs(t, err, errMalformedMessage)
}

func TestHandleMessage_Dispatch(t *testing.T) {
	ctx := context.Background()
	useCase := &MockReferenceCacheUseCase{}

	useCase.On("InvalidatePatientsCache", ctx, int64(2)).Once()
	useCase.On("InvalidateBookingTypesCache", ctx, int64(2), int64(5)).Once()
	useCase.On("InvalidateBookingStatusesCache", ctx, int64(0), int64(5)).Once()
	useCase.On("InvalidateAllCache", ctx).Once()

	require.NoError(t, handleMessage(ctx, useCase, "goodx.web.patient.1.invalidate", []byte(`{"entity_uid":2}`)))
	require.NoError(t, handleMessage(ctx, useCase, "goodx.web.booking_type.1.invalidate", []byte(`{"entity_uid":2,"diary_uid":5}`)))
	require.NoError(t, handleMessage(ctx, useCase, "goodx.web.booking_status.1.invalidate", []byte(`{"diary_uid":5}`)))
	require.NoError(t, handleMessage(ctx, useCase, "goodx.web._all_._all_.invalidate", nil))

	useCase.AssertExpectations(t)
}

func TestHandleMessage_IgnoresStore(t *testing.T) {
	useCase := &MockReferenceCacheUseCase{}

	err := handleMessage(context.Background(), useCase, "goodx.web.patient.1.store", []byte(`{"entity_uid":2}`))

	assert.NoError(t, err)
	useCase.AssertNotCalled(t, "InvalidatePatientsCache", mock.Anything, mock.Anything)
}

func TestHandleMessage_Malformed(t *testing.T) {
	ctx := context.Background()
	useCase := &MockReferenceCacheUseCase{}

	err := handleMessage(ctx, useCase, "goodx.web.patient.1.invalidate", []byte(`{not json`))
	assert.ErrorIs(t, err, errMalformedMessage)

	err = handleMessage(ctx, useCase, "goodx.web.diary.1.invalidate", []byte(`{}`))
	assert.ErrorIs(t, err, errMalformedMessage)

	err = handleMessage(ctx, useCase, "bad", nil)
	assert.ErrorIs(t, err, errMalformedMessage)
}
