package out

import (
	"context"
	"time"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
)

type SessionStorePort interface {
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Set(ctx context.Context, session domain.Session, ttl time.Duration) error
	Clear(ctx context.Context, sessionID string) error
}
