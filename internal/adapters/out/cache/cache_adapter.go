package cache

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

// referenceCache - LRU одного справочника с вытеснением по TTL
type referenceCache[T any] struct {
	name  string
	cache *expirable.LRU[out.ReferenceKey, []T]
}

func newReferenceCache[T any](name string, size int, cfg *config.Config) *referenceCache[T] {
	return &referenceCache[T]{
		name:  name,
		cache: expirable.NewLRU[out.ReferenceKey, []T](size, nil, cfg.Cache.TTL),
	}
}

// invalidate удаляет все ключи, подходящие под фильтр. Возвращает количество удаленных
func (c *referenceCache[T]) invalidate(match func(key out.ReferenceKey) bool) int {
	removed := 0
	for _, key := range c.cache.Keys() {
		if match(key) && c.cache.Remove(key) {
			removed++
		}
	}
	return removed
}

type CacheAdapter struct {
	patientsCache        *referenceCache[domain.Patient]
	bookingTypesCache    *referenceCache[domain.BookingType]
	bookingStatusesCache *referenceCache[domain.BookingStatus]
	logger               out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	size := cfg.Cache.Size
	if size <= 0 {
		logger.Error("cache.init.failed", out.LogFields{
			"error": "cache size must be positive",
			"size":  size,
		})
		return nil, domain.ErrValidation
	}

	logger.Info("cache.enabled", out.LogFields{
		"size": size,
		"ttl":  cfg.Cache.TTL.String(),
	})

	return &CacheAdapter{
		patientsCache:        newReferenceCache[domain.Patient]("patients", size, cfg),
		bookingTypesCache:    newReferenceCache[domain.BookingType]("booking_types", size, cfg),
		bookingStatusesCache: newReferenceCache[domain.BookingStatus]("booking_statuses", size, cfg),
		logger:               logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.patientsCache.cache.Purge()
	c.bookingTypesCache.cache.Purge()
	c.bookingStatusesCache.cache.Purge()

	c.logger.Info("cache.invalidate_all", out.LogFields{})
}

// 0 в фильтре означает "любой"
func matchEntity(entityUID int64) func(key out.ReferenceKey) bool {
	return func(key out.ReferenceKey) bool {
		return entityUID == 0 || key.EntityUID == entityUID
	}
}

func matchDiary(entityUID, diaryUID int64) func(key out.ReferenceKey) bool {
	return func(key out.ReferenceKey) bool {
		return (entityUID == 0 || key.EntityUID == entityUID) &&
			(diaryUID == 0 || key.DiaryUID == diaryUID)
	}
}
