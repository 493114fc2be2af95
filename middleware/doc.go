// Package middleware provides the cross-cutting pieces of the HTTP stack.
//
// Two shapes are used. Request-level interceptors are plain
// func(http.Handler) http.Handler values registered with router.Use; they
// run before routing and see every request:
//
//   - RequestID assigns an ID and stores it under RequestIDKey
//   - Logging writes one access log record per request
//   - SecurityHeaders sets response hardening headers
//   - Refresh extends sessions that are close to expiry
//
// Handler middlewares are generic handler.Middleware[C] values attached
// to single pages or actions:
//
//   - RequireSession redirects visitors without a valid session
//   - RateLimit throttles by client IP
//
// Typical wiring:
//
//	r := router.New(router.WithLogger(log))
//	r.Use(
//		middleware.RequestID(),
//		middleware.Logging(log),
//		middleware.SecurityHeaders(),
//		middleware.Refresh(sessions, middleware.RefreshConfig{Policy: r.CookiePolicy()}),
//	)
//
//	r.Page("/protected", protected, middleware.RequireSession[*router.PageContext](sessions, "/"))
//	r.Action("/login", login, middleware.RateLimit[*router.ActionContext](middleware.RateLimitConfig{
//		Limiter: limiter,
//	}))
//
// The request ID can be attached to every log record with
//
//	logger.New(logger.WithContextValue("request_id", middleware.RequestIDKey{}))
package middleware
