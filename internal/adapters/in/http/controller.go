package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/in"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

type DiaryWebController struct {
	auth        in.AuthUseCase
	dashboard   in.DashboardUseCase
	bookingForm in.BookingFormUseCase
	cfg         *config.Config
	logger      out.LoggerPort
	limiter     *loginLimiter
}

func NewDiaryWebController(
	auth in.AuthUseCase,
	dashboard in.DashboardUseCase,
	bookingForm in.BookingFormUseCase,
	cfg *config.Config,
	logger out.LoggerPort,
) *DiaryWebController {
	return &DiaryWebController{
		auth:        auth,
		dashboard:   dashboard,
		bookingForm: bookingForm,
		cfg:         cfg,
		logger:      logger,
		limiter:     newLoginLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst),
	}
}

func (c *DiaryWebController) RegisterRoutes(router *gin.Engine) error {
	templates, err := parseTemplates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(templates)

	// X-Forwarded-For учитывается только от перечисленных прокси
	if err := router.SetTrustedProxies(c.cfg.HTTP.TrustedProxies); err != nil {
		return err
	}

	router.Use(requestID(), requestLogger(c.logger))

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, loginPath)
	})
	router.GET(loginPath, c.loginPage)
	router.POST(loginPath, c.limiter.middleware(c.logger), c.login)
	router.POST("/logout", c.logout)

	dashboard := router.Group(dashboardPath)
	dashboard.Use(c.sessionGate())
	{
		dashboard.GET("", c.showDashboard)
		dashboard.GET("/bookings/new", c.newBooking)
		dashboard.GET("/bookings/:uid/edit", c.editBooking)
		dashboard.POST("/bookings", c.createBooking)
		dashboard.POST("/bookings/:uid", c.updateBooking)
		dashboard.POST("/bookings/:uid/cancel", c.cancelBooking)
	}

	if c.cfg.Proxy.Enabled {
		proxy, err := newAPIProxy(c.cfg, c.logger)
		if err != nil {
			return err
		}
		router.Any(c.cfg.Proxy.Prefix+"/*path", proxy)
	}

	// Любой неизвестный путь ведет на логин
	router.NoRoute(func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, loginPath)
	})

	return nil
}
