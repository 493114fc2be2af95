package session

import (
	"log/slog"
	"time"
)

// Default session parameters.
const (
	DefaultTTL              = 10 * time.Minute
	DefaultRefreshThreshold = 2 * time.Minute
	DefaultCookieName       = "session"
)

// Config holds session settings loaded from the environment.
type Config struct {
	Secret           string        `env:"SESSION_SECRET"`
	PreviousSecrets  string        `env:"SESSION_PREVIOUS_SECRETS"`
	TTL              time.Duration `env:"SESSION_TTL" envDefault:"10m"`
	RefreshThreshold time.Duration `env:"SESSION_REFRESH_THRESHOLD" envDefault:"2m"`
	CookieName       string        `env:"SESSION_COOKIE_NAME" envDefault:"session"`
}

// options is the resolved manager configuration.
type options struct {
	ttl              time.Duration
	refreshThreshold time.Duration
	cookieName       string
	secure           bool
	now              func() time.Time
	logger           *slog.Logger
}

func defaultOptions() options {
	return options{
		ttl:              DefaultTTL,
		refreshThreshold: DefaultRefreshThreshold,
		cookieName:       DefaultCookieName,
		now:              time.Now,
		logger:           slog.Default(),
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*options)

// WithTTL sets the session lifetime. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithRefreshThreshold sets the remaining lifetime below which Refresh
// reissues the token. Negative values are ignored; zero disables refresh.
func WithRefreshThreshold(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.refreshThreshold = d
		}
	}
}

// WithCookieName sets the session cookie name.
func WithCookieName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.cookieName = name
		}
	}
}

// WithSecure marks the session cookie Secure. Enable in production.
func WithSecure(secure bool) Option {
	return func(o *options) {
		o.secure = secure
	}
}

// WithClock replaces the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used for refresh failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
