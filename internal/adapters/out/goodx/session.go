package goodx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
	"github.com/suchimauz/goodx-diary-web/internal/utils"
)

type sessionModel struct {
	Timeout int `json:"timeout"`
}

type passwordAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionRequest struct {
	Model sessionModel `json:"model"`
	Auth  [][]any      `json:"auth"`
}

// flexibleID - uid сессии может прийти строкой или числом
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = flexibleID(n.String())
	return nil
}

type sessionData struct {
	UID flexibleID `json:"uid"`
}

func newSessionRequest(username, password string) sessionRequest {
	return sessionRequest{
		Model: sessionModel{Timeout: int(domain.SessionTimeout / time.Second)},
		Auth: [][]any{
			{"password", passwordAuth{Username: username, Password: password}},
		},
	}
}

func (c *Client) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	c.logger.Info("goodx.session.create", out.LogFields{
		"username": username,
	})

	req := request{
		method: http.MethodPost,
		path:   "/session",
		body:   newSessionRequest(username, password),
	}

	return utils.Try(c.logger, req.label(), func() (*domain.Session, error) {
		var env envelope[sessionData]
		cookies, err := c.do(ctx, nil, req, &env)
		if err != nil {
			return nil, err
		}
		if env.Data.UID == "" {
			return nil, fmt.Errorf("%w: session uid is missing", domain.ErrMalformed)
		}

		now := time.Now()
		session := &domain.Session{
			ID:        string(env.Data.UID),
			Username:  username,
			CreatedAt: now,
			ExpiresAt: now.Add(domain.SessionTimeout),
		}
		for _, cookie := range cookies {
			session.Cookies = append(session.Cookies, domain.SessionCookie{Name: cookie.Name, Value: cookie.Value})
		}

		c.logger.Debug("goodx.session.create_success", out.LogFields{
			"username": username,
			"cookies":  len(session.Cookies),
		})

		return session, nil
	}).Unwrap()
}
