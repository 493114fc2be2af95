package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/cookiesession/core/cookie"
)

// Refresher extends a session that is close to expiry.
// *session.Manager implements it.
type Refresher interface {
	Refresh(ctx context.Context, jar *cookie.MutableJar) bool
}

// RefreshConfig configures the session refresh interceptor.
type RefreshConfig struct {
	// Skip defines a function to skip refreshing for specific requests, e.g. static assets
	Skip func(r *http.Request) bool
	// Policy builds the jar handed to the refresher (default: cookie.NewPolicy())
	Policy cookie.Policy
}

// Refresh runs once per request before routing. It owns the request-level
// cookie-write capability, lets the refresher reissue the session cookie
// and always forwards to next.
func Refresh(r Refresher, cfg RefreshConfig) func(http.Handler) http.Handler {
	if r == nil {
		panic("refresh middleware: refresher is required")
	}

	if cfg.Policy == (cookie.Policy{}) {
		cfg.Policy = cookie.NewPolicy()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if cfg.Skip == nil || !cfg.Skip(req) {
				r.Refresh(req.Context(), cfg.Policy.Jar(w, req))
			}
			next.ServeHTTP(w, req)
		})
	}
}
