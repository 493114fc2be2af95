package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/cookiesession/core/cookie"
	"github.com/dmitrymomot/cookiesession/core/logger"
	"github.com/dmitrymomot/cookiesession/pkg/token"
)

// Manager issues, reads, refreshes and clears the session cookie.
// It holds no per-request state and is safe for concurrent use.
type Manager struct {
	codec *token.Codec
	auth  Authenticator
	opts  options
}

// NewManager creates a session manager.
func NewManager(codec *token.Codec, auth Authenticator, opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Manager{
		codec: codec,
		auth:  auth,
		opts:  o,
	}
}

// NewFromConfig builds the signing context from cfg and creates a manager.
// Options passed explicitly override the config values.
func NewFromConfig(cfg Config, auth Authenticator, opts ...Option) (*Manager, error) {
	sc, err := token.NewSigningContext(cfg.Secret, token.ParseSecrets(cfg.PreviousSecrets)...)
	if err != nil {
		return nil, err
	}

	all := make([]Option, 0, 3+len(opts))
	all = append(all,
		WithTTL(cfg.TTL),
		WithRefreshThreshold(cfg.RefreshThreshold),
		WithCookieName(cfg.CookieName),
	)
	all = append(all, opts...)

	return NewManager(token.NewCodec(sc), auth, all...), nil
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.opts.cookieName
}

// TTL returns the lifetime of a freshly issued session.
func (m *Manager) TTL() time.Duration {
	return m.opts.ttl
}

// Login verifies creds and, on success, writes a new session cookie.
// On failure the jar is left untouched.
func (m *Manager) Login(ctx context.Context, jar *cookie.MutableJar, creds Credentials) error {
	user, err := m.auth.Authenticate(ctx, creds)
	if err != nil {
		return err
	}

	return m.issue(jar, &user)
}

// Get returns the current session payload, or nil when the cookie is
// missing, doesn't verify, or has expired. It never writes.
func (m *Manager) Get(jar cookie.Jar) *token.Payload {
	raw, err := jar.Get(m.opts.cookieName)
	if err != nil {
		return nil
	}

	p, err := m.codec.Decode(raw)
	if err != nil {
		return nil
	}

	if p.Expired(m.opts.now()) {
		return nil
	}

	return &p
}

// Logout clears the session cookie. It has no effect beyond the cookie.
func (m *Manager) Logout(jar *cookie.MutableJar) {
	jar.Delete(m.opts.cookieName, m.cookieOptions()...)
}

// Refresh reissues the session with a full TTL when the cookie the client
// sent is valid and has less than the refresh threshold left. Expired and
// invalid cookies are left alone. Reports whether a new cookie was written.
func (m *Manager) Refresh(ctx context.Context, jar *cookie.MutableJar) bool {
	raw, err := jar.Incoming(m.opts.cookieName)
	if err != nil {
		return false
	}

	p, err := m.codec.Decode(raw)
	if err != nil {
		return false
	}

	now := m.opts.now()
	if p.Expired(now) || p.Remaining(now) >= m.opts.refreshThreshold {
		return false
	}

	if err := m.issue(jar, p.User); err != nil {
		m.opts.logger.WarnContext(ctx, "session refresh skipped",
			logger.Component("session"),
			logger.Error(err),
		)
		return false
	}

	return true
}

func (m *Manager) issue(jar *cookie.MutableJar, user *token.User) error {
	p := token.NewPayload(user, m.opts.now().Add(m.opts.ttl))

	tok, err := m.codec.Encode(p)
	if err != nil {
		return err
	}

	if err := jar.Set(m.opts.cookieName, tok, m.cookieOptions()...); err != nil {
		return errors.Join(ErrIssueSession, err)
	}

	return nil
}

func (m *Manager) cookieOptions() []cookie.Option {
	return []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithSecure(m.opts.secure),
		cookie.WithTTL(m.opts.ttl),
	}
}
