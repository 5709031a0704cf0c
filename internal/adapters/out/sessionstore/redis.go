package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

const sessionKeyPrefix = "goodx:session:"

// RedisStore - общее хранилище сессий для нескольких инстансов
type RedisStore struct {
	client *redis.Client
	logger out.LoggerPort
}

func NewRedisStore(cfg *config.Config, logger out.LoggerPort) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}),
		logger: logger,
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		s.logger.Error("session.get.failed", out.LogFields{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (s *RedisStore) Set(ctx context.Context, session domain.Session, ttl time.Duration) error {
	if ttl > 0 {
		session.ExpiresAt = time.Now().Add(ttl)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		s.logger.Error("session.set.failed", out.LogFields{
			"sessionId": session.ID,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
