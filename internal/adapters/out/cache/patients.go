package cache

import (
	"context"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

// Кэширование пациентов

func (c *CacheAdapter) GetPatients(ctx context.Context, key out.ReferenceKey) ([]domain.Patient, bool) {
	// Пациенты не зависят от дневника
	key.DiaryUID = 0

	patients, exists := c.patientsCache.cache.Get(key)
	if !exists {
		c.logger.Debug("cache.patients.get.miss", out.LogFields{
			"entityUid": key.EntityUID,
		})
		return nil, false
	}

	c.logger.Debug("cache.patients.get.hit", out.LogFields{
		"entityUid": key.EntityUID,
		"count":     len(patients),
	})
	return patients, true
}

func (c *CacheAdapter) StorePatients(ctx context.Context, key out.ReferenceKey, patients []domain.Patient) {
	key.DiaryUID = 0
	c.patientsCache.cache.Add(key, patients)
}

func (c *CacheAdapter) InvalidatePatients(ctx context.Context, entityUID int64) {
	removed := c.patientsCache.invalidate(matchEntity(entityUID))

	c.logger.Debug("cache.patients.invalidate", out.LogFields{
		"entityUid": entityUID,
		"removed":   removed,
	})
}
