package goodx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"strconv"

	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
	"github.com/suchimauz/goodx-diary-web/internal/core/query"
	"github.com/suchimauz/goodx-diary-web/internal/utils"
)

const maxErrorBody = 4096

// APIError - ответ GoodX с неуспешным статусом
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: unexpected status code: %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: unexpected status code: %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Unwrap позволяет проверять протухшую сессию GoodX через errors.Is(err, domain.ErrSessionExpired)
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return domain.ErrSessionExpired
	}
	return nil
}

// envelope - все ответы GoodX завернуты в {"data": ...}
type envelope[T any] struct {
	Data T `json:"data"`
}

type request struct {
	method string
	path   string
	body   any
	params nurl.Values
}

func (r request) label() string {
	return r.method + " " + r.path
}

type Client struct {
	client    *http.Client
	baseURL   string
	pageLimit int
	logger    out.LoggerPort
}

func NewClient(cfg *config.Config, logger out.LoggerPort) *Client {
	return &Client{
		client:    &http.Client{Timeout: cfg.Goodx.Timeout},
		baseURL:   cfg.Goodx.URL,
		pageLimit: cfg.Goodx.PageLimit,
		logger:    logger,
	}
}

// listParams собирает fields, filter и limit. Пустой filter и нулевой limit не передаются
func listParams(fields []query.Expr, filter query.Expr, limit int) (nurl.Values, error) {
	params := nurl.Values{}

	encodedFields, err := query.EncodeFields(fields)
	if err != nil {
		return nil, err
	}
	params.Set("fields", encodedFields)

	if filter != nil {
		encodedFilter, err := query.Encode(filter)
		if err != nil {
			return nil, err
		}
		params.Set("filter", encodedFilter)
	}

	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	return params, nil
}

// fetch выполняет запрос через utils.Try и возвращает содержимое data
func fetch[T any](ctx context.Context, c *Client, session *domain.Session, req request) (T, error) {
	return utils.Try(c.logger, req.label(), func() (T, error) {
		var env envelope[T]
		if _, err := c.do(ctx, session, req, &env); err != nil {
			var zero T
			return zero, err
		}
		return env.Data, nil
	}).Unwrap()
}

// fetchList - как fetch, но null в data означает пустой список
func fetchList[T any](ctx context.Context, c *Client, session *domain.Session, req request) ([]T, error) {
	items, err := fetch[[]T](ctx, c, session, req)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Client) do(ctx context.Context, session *domain.Session, r request, target any) ([]*http.Cookie, error) {
	url := c.baseURL + r.path
	if len(r.params) > 0 {
		url += "?" + r.params.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != nil {
		for _, cookie := range session.Cookies {
			req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
	}

	c.logger.Debug("goodx.request", out.LogFields{
		"method": r.method,
		"path":   r.path,
	})

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			Method:     r.method,
			Path:       r.path,
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(errBody)),
		}
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformed, r.label(), err)
		}
	}

	return resp.Cookies(), nil
}
