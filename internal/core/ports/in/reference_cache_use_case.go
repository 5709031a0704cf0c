package in

import "context"

type ReferenceCacheUseCase interface {
	InvalidatePatientsCache(ctx context.Context, entityUID int64)
	InvalidateBookingTypesCache(ctx context.Context, entityUID, diaryUID int64)
	InvalidateBookingStatusesCache(ctx context.Context, entityUID, diaryUID int64)
	InvalidateAllCache(ctx context.Context)
}
