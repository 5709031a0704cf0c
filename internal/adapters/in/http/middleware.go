package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

const (
	requestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
)

// requestID берет id запроса из заголовка или генерирует новый
func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		ctx.Set(requestIDContextKey, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

func requestLogger(logger out.LoggerPort) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		fields := out.LogFields{
			"requestId": ctx.GetString(requestIDContextKey),
			"method":    ctx.Request.Method,
			"path":      ctx.Request.URL.Path,
			"status":    ctx.Writer.Status(),
			"latency":   time.Since(start).String(),
			"clientIp":  ctx.ClientIP(),
		}

		switch status := ctx.Writer.Status(); {
		case status >= 500:
			logger.Error("http.request", fields)
		case status >= 400:
			logger.Warn("http.request", fields)
		default:
			logger.Info("http.request", fields)
		}
	}
}
