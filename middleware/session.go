package middleware

import (
	"context"

	"github.com/dmitrymomot/cookiesession/core/cookie"
	"github.com/dmitrymomot/cookiesession/core/handler"
	"github.com/dmitrymomot/cookiesession/core/response"
	"github.com/dmitrymomot/cookiesession/pkg/token"
)

type sessionKey struct{}

// SessionReader resolves the current session from cookies.
// *session.Manager implements it.
type SessionReader interface {
	Get(jar cookie.Jar) *token.Payload
}

// SessionConfig configures the session guard.
type SessionConfig[C handler.Context] struct {
	// Skip defines a function to skip the guard for specific requests
	Skip func(ctx C) bool
	// Sessions resolves the session from the request cookies
	Sessions SessionReader
	// RedirectTo is where visitors without a session are sent (default: "/")
	RedirectTo string
	// OnMissing replaces the redirect when set
	OnMissing func(ctx C) handler.Response
}

// RequireSession lets the request through only with a valid session and
// redirects everyone else to redirectTo with 303 See Other.
//
//	r.Page("/protected", showProtected, middleware.RequireSession[*router.PageContext](mgr, "/"))
//
//	func showProtected(ctx *router.PageContext) handler.Response {
//		p, _ := middleware.GetSession(ctx)
//		return response.String("hello " + p.User.Name)
//	}
func RequireSession[C handler.Context](sessions SessionReader, redirectTo string) handler.Middleware[C] {
	return RequireSessionWithConfig(SessionConfig[C]{
		Sessions:   sessions,
		RedirectTo: redirectTo,
	})
}

// RequireSessionWithConfig is RequireSession with full configuration.
// The resolved payload is stored in the context for GetSession.
func RequireSessionWithConfig[C handler.Context](cfg SessionConfig[C]) handler.Middleware[C] {
	if cfg.Sessions == nil {
		panic("session middleware: session reader is required")
	}

	if cfg.RedirectTo == "" {
		cfg.RedirectTo = "/"
	}

	if cfg.OnMissing == nil {
		cfg.OnMissing = func(C) handler.Response {
			return response.RedirectSeeOther(cfg.RedirectTo)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			p := cfg.Sessions.Get(ctx.Cookies())
			if p == nil || !p.Authenticated() {
				return cfg.OnMissing(ctx)
			}

			ctx.SetValue(sessionKey{}, p)
			return next(ctx)
		}
	}
}

// GetSession returns the payload stored by RequireSession.
func GetSession(ctx context.Context) (*token.Payload, bool) {
	p, ok := ctx.Value(sessionKey{}).(*token.Payload)
	return p, ok && p != nil
}
