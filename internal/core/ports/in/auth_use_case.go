package in

import (
	"context"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
)

type AuthUseCase interface {
	// Логин в GoodX, возвращает сохраненную сессию
	Login(ctx context.Context, username, password string) (*domain.Session, error)

	// Серверная сессия по маркеру из браузера
	Session(ctx context.Context, sessionID string) (*domain.Session, error)

	Logout(ctx context.Context, sessionID string) error
}
