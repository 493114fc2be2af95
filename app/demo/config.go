package demo

import (
	"strings"
	"time"

	"github.com/dmitrymomot/cookiesession/core/cookie"
	"github.com/dmitrymomot/cookiesession/core/flash"
	"github.com/dmitrymomot/cookiesession/core/logger"
	"github.com/dmitrymomot/cookiesession/core/server"
	"github.com/dmitrymomot/cookiesession/core/session"
	"github.com/dmitrymomot/cookiesession/integration/database/redis"
)

// DevelopmentSecret signs sessions when SESSION_SECRET is unset.
// Anyone who knows it can forge a session.
const DevelopmentSecret = "insecure-development-secret"

// Config is the complete application configuration.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"Cookie Session Demo"`
	Env     string `env:"APP_ENV" envDefault:"development"`

	Log       logger.Config
	Cookie    cookie.Config
	Session   session.Config
	Auth      session.AuthConfig
	Flash     flash.Config
	Server    server.Config
	Redis     redis.Config
	LoginRate LoginRateConfig
}

// LoginRateConfig throttles login attempts per client IP.
type LoginRateConfig struct {
	Capacity       int           `env:"LOGIN_RATE_CAPACITY" envDefault:"5"`
	RefillInterval time.Duration `env:"LOGIN_RATE_REFILL_INTERVAL" envDefault:"1m"`
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DefaultConfig returns the configuration produced by an empty environment.
func DefaultConfig() Config {
	return Config{
		AppName: "Cookie Session Demo",
		Env:     "development",
		Log:     logger.Config{Level: "info", Format: "text"},
		Cookie:  cookie.DefaultConfig(),
		Session: session.Config{
			TTL:              session.DefaultTTL,
			RefreshThreshold: session.DefaultRefreshThreshold,
			CookieName:       session.DefaultCookieName,
		},
		Auth: session.AuthConfig{
			Username:    "admin",
			Password:    "password",
			DisplayName: "Admin",
		},
		Flash: flash.Config{
			CookieName: flash.DefaultCookieName,
			MaxAge:     flash.DefaultMaxAge,
			Limit:      flash.DefaultLimit,
		},
		Server: server.DefaultConfig(),
		Redis: redis.Config{
			RetryAttempts:  3,
			RetryInterval:  2 * time.Second,
			ConnectTimeout: 30 * time.Second,
		},
		LoginRate: LoginRateConfig{
			Capacity:       5,
			RefillInterval: time.Minute,
		},
	}
}
