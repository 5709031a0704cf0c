package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/goodx-diary-web/internal/adapters/in/http"
	"github.com/suchimauz/goodx-diary-web/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/goodx-diary-web/internal/adapters/out/cache"
	"github.com/suchimauz/goodx-diary-web/internal/adapters/out/goodx"
	"github.com/suchimauz/goodx-diary-web/internal/adapters/out/logger"
	"github.com/suchimauz/goodx-diary-web/internal/adapters/out/sessionstore"
	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
	"github.com/suchimauz/goodx-diary-web/internal/core/services"
)

const shutdownTimeout = 10 * time.Second

func newLogger(cfg *config.Config) (out.LoggerPort, func(), error) {
	level := out.ParseLogLevel(cfg.Log.Level)

	if cfg.Log.Format == "json" {
		zapLogger, err := logger.NewZapLogger(cfg.IsNotLocal(), level)
		if err != nil {
			return nil, nil, err
		}
		return zapLogger, func() { _ = zapLogger.Sync() }, nil
	}

	consoleLogger, err := logger.NewConsoleLogger(cfg.App.Timezone, level)
	if err != nil {
		return nil, nil, err
	}
	return consoleLogger, func() {}, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, syncLogger, err := newLogger(cfg)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer syncLogger()
	logger := mainLogger.WithModule("Main")

	logger.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"goodxUrl":        cfg.Goodx.URL,
		"sessionStore":    cfg.Session.Store,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
		"proxyEnabled":    cfg.Proxy.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация адаптеров
	goodxClient := goodx.NewClient(cfg, mainLogger.WithModule("GoodxClient"))

	var sessionStore out.SessionStorePort
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redisStore := sessionstore.NewRedisStore(cfg, mainLogger.WithModule("RedisSessionStore"))
		if err := redisStore.Ping(ctx); err != nil {
			logger.Error("app.redis.ping_failed", out.LogFields{
				"addr":  cfg.Redis.Addr,
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer redisStore.Close()
		sessionStore = redisStore
	default:
		sessionStore = sessionstore.NewMemoryStore(cfg, mainLogger.WithModule("MemorySessionStore"))
	}

	var cachePort out.CachePort
	if cfg.Cache.Enabled {
		cacheAdapter, err := cache.NewCacheAdapter(cfg, mainLogger)
		if err != nil {
			logger.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cachePort = cacheAdapter
	}

	// Инициализация сервисов
	referenceDataService := services.NewReferenceDataService(goodxClient, cachePort, mainLogger)
	authService := services.NewAuthService(goodxClient, sessionStore, mainLogger)
	dashboardService := services.NewDashboardService(goodxClient, mainLogger)
	bookingFormService := services.NewBookingFormService(goodxClient, referenceDataService, mainLogger)

	// Настройка HTTP сервера
	router := gin.New()
	router.Use(gin.Recovery())

	controller := http.NewDiaryWebController(
		authService,
		dashboardService,
		bookingFormService,
		cfg,
		mainLogger.WithModule("HttpController"),
	)
	if err := controller.RegisterRoutes(router); err != nil {
		logger.Error("app.http.routes_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewCacheInvalidationListener(
			referenceDataService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			logger.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		if err := listener.Start(ctx); err != nil {
			logger.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				logger.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	server := &nethttp.Server{
		Addr:              cfg.HTTP.Host + ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	logger.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("app.shutdown.failed", out.LogFields{
			"error": err.Error(),
		})
	}
	cancel()

	logger.Info("app.shutdown.completed", out.LogFields{})
}
