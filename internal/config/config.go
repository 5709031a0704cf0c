package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type SessionStoreKind string

const (
	SessionStoreMemory SessionStoreKind = "memory"
	SessionStoreRedis  SessionStoreKind = "redis"
)

// TimeZone используется для дат без таймзоны, приходящих из GoodX
var TimeZone = time.Local

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Africa/Johannesburg"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
		// пусто - не доверять никому, IP клиента берется из соединения
		TrustedProxies []string `env:"HTTP_TRUSTED_PROXIES" envSeparator:","`
	}

	Log struct {
		Format string `env:"LOG_FORMAT" envDefault:"console"`
		Level  string `env:"LOG_LEVEL" envDefault:"debug"`
	}

	Goodx struct {
		URL       string        `env:"GOODX_URL" envDefault:"https://dev_interview.qagoodx.co.za"`
		Timeout   time.Duration `env:"GOODX_TIMEOUT" envDefault:"10s"`
		PageLimit int           `env:"GOODX_PAGE_LIMIT" envDefault:"100"`
	}

	Session struct {
		CookieName string           `env:"SESSION_COOKIE_NAME" envDefault:"uuid"`
		Secure     bool             `env:"SESSION_COOKIE_SECURE"`
		Store      SessionStoreKind `env:"SESSION_STORE" envDefault:"memory"`
		MemorySize int              `env:"SESSION_MEMORY_SIZE" envDefault:"10000"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Proxy struct {
		Enabled bool   `env:"PROXY_ENABLED"`
		Prefix  string `env:"PROXY_PREFIX" envDefault:"/api"`
	}

	RateLimit struct {
		LoginPerMinute int `env:"RATE_LIMIT_LOGIN_PER_MINUTE" envDefault:"10"`
		LoginBurst     int `env:"RATE_LIMIT_LOGIN_BURST" envDefault:"5"`
	}

	RabbitMQ struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED"`
		URL      string `env:"RABBITMQ_URL"`
		Queue    string `env:"RABBITMQ_QUEUE" envDefault:"goodx-diary-web.reference"`
		Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"goodx"`
		Bind     string `env:"RABBITMQ_BIND" envDefault:"*.goodx-diary-web.#"`
	}

	Cache struct {
		Enabled bool          `env:"CACHE_ENABLED"`
		Size    int           `env:"CACHE_SIZE" envDefault:"1000"`
		TTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))
	cfg.Session.Store = SessionStoreKind(strings.ToLower(string(cfg.Session.Store)))
	cfg.Goodx.URL = strings.TrimRight(cfg.Goodx.URL, "/")

	if loc, err := time.LoadLocation(cfg.App.Timezone); err == nil {
		TimeZone = loc
	}

	// Без RabbitMQ некому сбрасывать кэш, поэтому держим его коротким
	if !cfg.RabbitMQ.Enabled && cfg.Cache.TTL > 5*time.Minute {
		cfg.Cache.TTL = 5 * time.Minute
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
