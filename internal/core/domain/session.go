package domain

import "time"

// SessionTimeout - срок жизни сессии GoodX и маркера в браузере (3 дня)
const SessionTimeout = 259200 * time.Second

type SessionCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Session - серверная часть сессии: идентификатор, выданный GoodX при логине,
// и куки апстрима, которые подставляются в каждый запрос
type Session struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Cookies   []SessionCookie `json:"cookies"`
	CreatedAt time.Time       `json:"createdAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
