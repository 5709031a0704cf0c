package cache

import (
	"context"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

// Кэширование статусов записей

func (c *CacheAdapter) GetBookingStatuses(ctx context.Context, key out.ReferenceKey) ([]domain.BookingStatus, bool) {
	statuses, exists := c.bookingStatusesCache.cache.Get(key)
	if !exists {
		c.logger.Debug("cache.booking_statuses.get.miss", out.LogFields{
			"entityUid": key.EntityUID,
			"diaryUid":  key.DiaryUID,
		})
		return nil, false
	}

	return statuses, true
}

func (c *CacheAdapter) StoreBookingStatuses(ctx context.Context, key out.ReferenceKey, statuses []domain.BookingStatus) {
	c.bookingStatusesCache.cache.Add(key, statuses)
}

func (c *CacheAdapter) InvalidateBookingStatuses(ctx context.Context, entityUID, diaryUID int64) {
	removed := c.bookingStatusesCache.invalidate(matchDiary(entityUID, diaryUID))

	c.logger.Debug("cache.booking_statuses.invalidate", out.LogFields{
		"entityUid": entityUID,
		"diaryUid":  diaryUID,
		"removed":   removed,
	})
}
