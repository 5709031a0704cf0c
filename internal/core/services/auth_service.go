package services

import (
	"context"
	"time"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

type AuthService struct {
	bookingAPI   out.BookingAPIPort
	sessionStore out.SessionStorePort
	logger       out.LoggerPort
	now          func() time.Time
}

func NewAuthService(
	bookingAPI out.BookingAPIPort,
	sessionStore out.SessionStorePort,
	logger out.LoggerPort,
) *AuthService {
	return &AuthService{
		bookingAPI:   bookingAPI,
		sessionStore: sessionStore,
		logger:       logger.WithModule("AuthService"),
		now:          time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	session, err := s.bookingAPI.Login(ctx, username, password)
	if err != nil {
		s.logger.Warn("auth.login.failed", out.LogFields{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	session.Username = username
	session.CreatedAt = s.now()
	session.ExpiresAt = session.CreatedAt.Add(domain.SessionTimeout)

	if err := s.sessionStore.Set(ctx, *session, domain.SessionTimeout); err != nil {
		s.logger.Error("auth.login.session_store_failed", out.LogFields{
			"sessionId": session.ID,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("auth.login.success", out.LogFields{
		"username":  username,
		"sessionId": session.ID,
	})
	return session, nil
}

func (s *AuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}
	return s.sessionStore.Get(ctx, sessionID)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessionStore.Clear(ctx, sessionID); err != nil {
		s.logger.Error("auth.logout.failed", out.LogFields{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return err
	}

	s.logger.Info("auth.logout", out.LogFields{
		"sessionId": sessionID,
	})
	return nil
}
