package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cookiesession/core/cookie"
	"github.com/dmitrymomot/cookiesession/core/handler"
)

// Option configures a Router during creation.
type Option func(*Router)

// WithErrorHandler sets the handler for errors returned by pages and actions.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(r *Router) {
		if h != nil {
			r.errorHandler = h
		}
	}
}

// WithLogger sets the logger used for panics that happen after the
// response was written.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithCookiePolicy sets the policy used to build action cookie jars.
func WithCookiePolicy(p cookie.Policy) Option {
	return func(r *Router) {
		r.policy = p
	}
}

// WithCookieOptions adjusts the default cookie policy.
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(r *Router) {
		maxSize := r.policy.MaxSize
		r.policy = cookie.NewPolicy(opts...)
		if maxSize > 0 {
			r.policy.MaxSize = maxSize
		}
	}
}

// WithMiddleware adds request-level interceptors. They run for every
// request, including unmatched ones, before routing.
func WithMiddleware(middlewares ...func(http.Handler) http.Handler) Option {
	return func(r *Router) {
		r.interceptors = append(r.interceptors, middlewares...)
	}
}
