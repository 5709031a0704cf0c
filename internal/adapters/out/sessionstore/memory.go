package sessionstore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

// MemoryStore хранит сессии в LRU с вытеснением по сроку жизни.
// LRU держит общий TTL сессии GoodX, срок конкретной сессии дополнительно проверяется по ExpiresAt
type MemoryStore struct {
	cache  *expirable.LRU[string, domain.Session]
	now    func() time.Time
	logger out.LoggerPort
}

func NewMemoryStore(cfg *config.Config, logger out.LoggerPort) *MemoryStore {
	return &MemoryStore{
		cache:  expirable.NewLRU[string, domain.Session](cfg.Session.MemorySize, nil, domain.SessionTimeout),
		now:    time.Now,
		logger: logger,
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, ok := s.cache.Get(sessionID)
	if !ok {
		s.logger.Debug("session.get.miss", out.LogFields{
			"sessionId": sessionID,
		})
		return nil, domain.ErrSessionNotFound
	}

	if session.Expired(s.now()) {
		s.cache.Remove(sessionID)
		s.logger.Debug("session.get.expired", out.LogFields{
			"sessionId": sessionID,
		})
		return nil, domain.ErrSessionNotFound
	}

	return &session, nil
}

func (s *MemoryStore) Set(ctx context.Context, session domain.Session, ttl time.Duration) error {
	if ttl > 0 {
		session.ExpiresAt = s.now().Add(ttl)
	}
	s.cache.Add(session.ID, session)

	s.logger.Debug("session.set", out.LogFields{
		"sessionId": session.ID,
		"expiresAt": session.ExpiresAt,
	})
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.cache.Remove(sessionID)
	return nil
}
