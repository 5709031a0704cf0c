package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
	"golang.org/x/time/rate"
)

const (
	loginLimiterSize = 10000
	loginLimiterTTL  = 10 * time.Minute
)

// loginLimiter - token bucket на IP клиента для попыток логина.
// Бакеты лежат в LRU, чтобы поток новых адресов не раздувал память
type loginLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func newLoginLimiter(perMinute, burst int) *loginLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst <= 0 {
		burst = 1
	}

	return &loginLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](loginLimiterSize, nil, loginLimiterTTL),
		limit:    limit,
		burst:    burst,
	}
}

func (l *loginLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters.Get(ip)
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(ip, limiter)
	}
	return limiter
}

func (l *loginLimiter) middleware(logger out.LoggerPort) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ip := ctx.ClientIP()
		if !l.get(ip).Allow() {
			logger.Warn("http.login.rate_limited", out.LogFields{
				"clientIp": ip,
			})
			ctx.HTML(http.StatusTooManyRequests, "login.html", loginView{
				Username: ctx.PostForm("username"),
				Error:    errTooManyAttempts,
			})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
