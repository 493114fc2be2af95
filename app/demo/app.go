package demo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/cookiesession/core/cookie"
	"github.com/dmitrymomot/cookiesession/core/flash"
	"github.com/dmitrymomot/cookiesession/core/handler"
	"github.com/dmitrymomot/cookiesession/core/health"
	"github.com/dmitrymomot/cookiesession/core/logger"
	"github.com/dmitrymomot/cookiesession/core/response"
	"github.com/dmitrymomot/cookiesession/core/router"
	"github.com/dmitrymomot/cookiesession/core/server"
	"github.com/dmitrymomot/cookiesession/core/session"
	"github.com/dmitrymomot/cookiesession/integration/database/redis"
	"github.com/dmitrymomot/cookiesession/middleware"
	"github.com/dmitrymomot/cookiesession/pkg/ratelimiter"
)

// App wires sessions, flash messages and login throttling into a router.
type App struct {
	config   Config
	logger   *slog.Logger
	now      func() time.Time
	auth     session.Authenticator
	sessions *session.Manager
	flash    *flash.Flash
	limiter  ratelimiter.RateLimiter
	memStore *ratelimiter.MemoryStore
	redis    goredis.UniversalClient
	router   *router.Router
}

// AppOption configures an App.
type AppOption func(*App) error

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) AppOption {
	return func(a *App) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		a.logger = l
		return nil
	}
}

// WithClock replaces the time source for sessions, rate limiting and pages.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		a.now = now
		return nil
	}
}

// WithAuthenticator replaces the authenticator built from Config.Auth.
func WithAuthenticator(auth session.Authenticator) AppOption {
	return func(a *App) error {
		if auth == nil {
			return errors.New("authenticator cannot be nil")
		}
		a.auth = auth
		return nil
	}
}

// WithRedis stores login rate-limit buckets in Redis instead of memory
// and adds Redis to the health check.
func WithRedis(client goredis.UniversalClient) AppOption {
	return func(a *App) error {
		if client == nil {
			return errors.New("redis client cannot be nil")
		}
		a.redis = client
		return nil
	}
}

// New builds the application from cfg.
func New(cfg Config, opts ...AppOption) (*App, error) {
	a := &App{
		config: cfg,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	secure := cfg.Cookie.Secure || cfg.IsProduction()
	a.config.Cookie.Secure = secure

	if strings.TrimSpace(a.config.Session.Secret) == "" {
		level := slog.LevelWarn
		if cfg.IsProduction() {
			level = slog.LevelError
		}
		a.logger.Log(context.Background(), level, "SESSION_SECRET is not set, using the development secret",
			logger.Component("app"),
		)
		a.config.Session.Secret = DevelopmentSecret
	}

	if a.auth == nil {
		auth, err := session.NewStaticAuthenticatorFromConfig(cfg.Auth)
		if err != nil {
			return nil, err
		}
		a.auth = auth
	}

	sessions, err := session.NewFromConfig(a.config.Session, a.auth,
		session.WithSecure(secure),
		session.WithClock(a.now),
		session.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}
	a.sessions = sessions

	a.flash = flash.NewFromConfig(cfg.Flash, flash.WithSecure(secure))

	if err := a.setupLimiter(); err != nil {
		return nil, err
	}

	a.routes()
	return a, nil
}

func (a *App) setupLimiter() error {
	var store ratelimiter.Store
	if a.redis != nil {
		store = ratelimiter.NewRedisStore(a.redis, ratelimiter.WithKeyPrefix("ratelimit:login:"), ratelimiter.WithRedisStoreClock(a.now))
	} else {
		a.memStore = ratelimiter.NewMemoryStore(
			ratelimiter.WithCleanupInterval(time.Minute),
			ratelimiter.WithMemoryStoreLogger(a.logger),
			ratelimiter.WithMemoryStoreClock(a.now),
		)
		store = a.memStore
	}

	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       a.config.LoginRate.Capacity,
		RefillRate:     1,
		RefillInterval: a.config.LoginRate.RefillInterval,
	}, ratelimiter.WithClock(a.now))
	if err != nil {
		return err
	}
	a.limiter = limiter
	return nil
}

func (a *App) routes() {
	r := router.New(
		router.WithLogger(a.logger),
		router.WithCookiePolicy(cookie.NewPolicyFromConfig(a.config.Cookie)),
		router.WithErrorHandler(response.TemplErrorHandler[handler.Context](a.errorPage)),
	)

	headers := middleware.DefaultSecurityHeaders
	headers.IsDevelopment = !a.config.IsProduction()

	r.Use(
		middleware.RequestID(),
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: a.logger,
			Skip:   isHealthcheck,
		}),
		middleware.SecurityHeadersWithConfig(headers),
		middleware.Refresh(a.sessions, middleware.RefreshConfig{
			Policy: r.CookiePolicy(),
			Skip:   isHealthcheck,
		}),
	)

	requireSession := middleware.RequireSession[*router.PageContext](a.sessions, "/")

	r.Page("/", a.landing)
	r.Page("/protected", a.protected, requireSession)
	r.Page("/healthz", health.Handler[*router.PageContext](a.logger, a.healthChecks()...))

	r.Action("/login", a.login, middleware.RateLimit[*router.ActionContext](middleware.RateLimitConfig{
		Limiter:    a.limiter,
		SetHeaders: true,
		Logger:     a.logger,
	}))
	r.Action("/protected/save", a.save, middleware.RequireSession[*router.ActionContext](a.sessions, "/"))
	r.Action("/logout", a.logout)

	a.router = r
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Run serves HTTP until ctx is canceled. With the memory rate-limit store
// it also runs the stale bucket cleanup.
func (a *App) Run(ctx context.Context) error {
	srv, err := server.NewFromConfig(a.config.Server, server.WithLogger(a.logger))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, a.router))
	if a.memStore != nil {
		g.Go(a.memStore.Run(ctx))
	}

	return g.Wait()
}

func (a *App) healthChecks() []health.Check {
	if a.redis == nil {
		return nil
	}
	return []health.Check{{Name: "redis", Probe: redis.Healthcheck(a.redis)}}
}

func isHealthcheck(r *http.Request) bool {
	return r.URL.Path == "/healthz"
}
