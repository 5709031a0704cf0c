package cache

import (
	"context"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

// Кэширование типов записей

func (c *CacheAdapter) GetBookingTypes(ctx context.Context, key out.ReferenceKey) ([]domain.BookingType, bool) {
	types, exists := c.bookingTypesCache.cache.Get(key)
	if !exists {
		c.logger.Debug("cache.booking_types.get.miss", out.LogFields{
			"entityUid": key.EntityUID,
			"diaryUid":  key.DiaryUID,
		})
		return nil, false
	}

	return types, true
}

func (c *CacheAdapter) StoreBookingTypes(ctx context.Context, key out.ReferenceKey, types []domain.BookingType) {
	c.bookingTypesCache.cache.Add(key, types)
}

func (c *CacheAdapter) InvalidateBookingTypes(ctx context.Context, entityUID, diaryUID int64) {
	removed := c.bookingTypesCache.invalidate(matchDiary(entityUID, diaryUID))

	c.logger.Debug("cache.booking_types.invalidate", out.LogFields{
		"entityUid": entityUID,
		"diaryUid":  diaryUID,
		"removed":   removed,
	})
}
