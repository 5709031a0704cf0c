package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

const (
	errLoginFailed     = "Login failed. Please check your credentials."
	errLoginRequired   = "Username and password are required."
	errTooManyAttempts = "Too many login attempts. Try again later."
)

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type loginView struct {
	Username string
	Error    string
}

func (c *DiaryWebController) loginPage(ctx *gin.Context) {
	// С живым маркером логин не нужен
	if marker := c.sessionMarker(ctx); marker != "" {
		if _, err := c.auth.Session(ctx.Request.Context(), marker); err == nil {
			ctx.Redirect(http.StatusFound, dashboardPath)
			return
		}
	}

	ctx.HTML(http.StatusOK, "login.html", loginView{})
}

func (c *DiaryWebController) login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.HTML(http.StatusBadRequest, "login.html", loginView{
			Username: req.Username,
			Error:    errLoginRequired,
		})
		return
	}

	session, err := c.auth.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		ctx.HTML(http.StatusUnauthorized, "login.html", loginView{
			Username: req.Username,
			Error:    errLoginFailed,
		})
		return
	}

	c.setSessionMarker(ctx, session.ID)
	ctx.Redirect(http.StatusSeeOther, dashboardPath)
}

func (c *DiaryWebController) logout(ctx *gin.Context) {
	marker := c.sessionMarker(ctx)
	c.clearSessionMarker(ctx)

	if err := c.auth.Logout(ctx.Request.Context(), marker); err != nil {
		c.logger.Warn("http.logout.failed", out.LogFields{
			"error": err.Error(),
		})
	}

	ctx.Redirect(http.StatusSeeOther, loginPath)
}
