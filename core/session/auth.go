package session

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/cookiesession/pkg/token"
)

// Credentials is a submitted login form.
type Credentials struct {
	Username string
	Password string
}

// Authenticator verifies credentials and returns the user to store in the session.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (token.User, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, creds Credentials) (token.User, error)

// Authenticate calls f(ctx, creds).
func (f AuthenticatorFunc) Authenticate(ctx context.Context, creds Credentials) (token.User, error) {
	return f(ctx, creds)
}

// AuthConfig configures the single-account StaticAuthenticator.
type AuthConfig struct {
	Username     string `env:"AUTH_USERNAME" envDefault:"admin"`
	Password     string `env:"AUTH_PASSWORD" envDefault:"password"`
	PasswordHash string `env:"AUTH_PASSWORD_HASH"`
	DisplayName  string `env:"AUTH_DISPLAY_NAME" envDefault:"Admin"`
}

// StaticAuthenticator accepts exactly one username/password pair.
// It stands in for a real user directory.
type StaticAuthenticator struct {
	username []byte
	hash     []byte
	user     token.User
}

// NewStaticAuthenticator hashes password with bcrypt at the given cost.
// A cost of zero selects bcrypt.DefaultCost.
func NewStaticAuthenticator(username, password, displayName string, cost int) (*StaticAuthenticator, error) {
	if username == "" {
		return nil, ErrMissingUsername
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, errors.Join(ErrInvalidPasswordHash, err)
	}

	return newStatic(username, hash, displayName), nil
}

// NewStaticAuthenticatorFromHash uses a precomputed bcrypt hash.
func NewStaticAuthenticatorFromHash(username, hash, displayName string) (*StaticAuthenticator, error) {
	if username == "" {
		return nil, ErrMissingUsername
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, errors.Join(ErrInvalidPasswordHash, err)
	}

	return newStatic(username, []byte(hash), displayName), nil
}

// NewStaticAuthenticatorFromConfig prefers AUTH_PASSWORD_HASH over the plain password.
func NewStaticAuthenticatorFromConfig(cfg AuthConfig) (*StaticAuthenticator, error) {
	if cfg.PasswordHash != "" {
		return NewStaticAuthenticatorFromHash(cfg.Username, cfg.PasswordHash, cfg.DisplayName)
	}
	return NewStaticAuthenticator(cfg.Username, cfg.Password, cfg.DisplayName, 0)
}

func newStatic(username string, hash []byte, displayName string) *StaticAuthenticator {
	if displayName == "" {
		displayName = username
	}
	return &StaticAuthenticator{
		username: []byte(username),
		hash:     hash,
		user:     token.User{Name: displayName},
	}
}

// Authenticate returns ErrInvalidCredentials unless both fields match.
// The password hash is always compared so timing doesn't reveal the username.
func (a *StaticAuthenticator) Authenticate(_ context.Context, creds Credentials) (token.User, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), a.username) == 1
	passErr := bcrypt.CompareHashAndPassword(a.hash, []byte(creds.Password))

	if !userOK || passErr != nil {
		return token.User{}, ErrInvalidCredentials
	}
	return a.user, nil
}
