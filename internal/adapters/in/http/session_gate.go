package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"

	sessionContextKey = "session"
)

func (c *DiaryWebController) setSessionMarker(ctx *gin.Context, sessionID string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cfg.Session.CookieName, sessionID, int(domain.SessionTimeout.Seconds()), "/", "", c.cfg.Session.Secure, true)
}

func (c *DiaryWebController) clearSessionMarker(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cfg.Session.CookieName, "", -1, "/", "", c.cfg.Session.Secure, true)
}

func (c *DiaryWebController) sessionMarker(ctx *gin.Context) string {
	marker, err := ctx.Cookie(c.cfg.Session.CookieName)
	if err != nil {
		return ""
	}
	return marker
}

// sessionGate пропускает только запросы с маркером сессии. Проверяется лишь наличие маркера,
// срок жизни задает max-age куки
func (c *DiaryWebController) sessionGate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		marker := c.sessionMarker(ctx)
		if marker == "" {
			ctx.Redirect(http.StatusFound, loginPath)
			ctx.Abort()
			return
		}

		session, err := c.auth.Session(ctx.Request.Context(), marker)
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				c.logger.Debug("http.session.not_found", out.LogFields{
					"sessionId": marker,
				})
				c.clearSessionMarker(ctx)
				ctx.Redirect(http.StatusFound, loginPath)
				ctx.Abort()
				return
			}

			c.logger.Error("http.session.lookup_failed", out.LogFields{
				"error": err.Error(),
			})
			ctx.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}

		ctx.Set(sessionContextKey, session)
		ctx.Next()
	}
}

func sessionFrom(ctx *gin.Context) *domain.Session {
	session, _ := ctx.MustGet(sessionContextKey).(*domain.Session)
	return session
}

// expireSession завершает сессию, которую отклонил GoodX, и отправляет на логин
func (c *DiaryWebController) expireSession(ctx *gin.Context, session *domain.Session) {
	c.logger.Info("http.session.expired", out.LogFields{
		"sessionId": session.ID,
	})

	if err := c.auth.Logout(ctx.Request.Context(), session.ID); err != nil {
		c.logger.Warn("http.session.clear_failed", out.LogFields{
			"error": err.Error(),
		})
	}
	c.clearSessionMarker(ctx)
	ctx.Redirect(http.StatusFound, loginPath)
}
