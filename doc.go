// Package cookiesession is a minimal session authentication kit for
// server-rendered web applications. A signed token in an HttpOnly cookie
// is the whole session: nothing is stored on the server, tokens are
// verified on every request and extended shortly before they expire.
// A second, script-readable cookie carries short-lived flash messages.
//
// # Package Organization
//
// Core framework packages:
//
//   - github.com/dmitrymomot/cookiesession/core/cookie: read-only cookie jars and the write capability
//   - github.com/dmitrymomot/cookiesession/core/session: login, lookup, logout and refresh of sessions
//   - github.com/dmitrymomot/cookiesession/core/flash: capped flash message list stored in a cookie
//   - github.com/dmitrymomot/cookiesession/core/router: gorilla/mux router with page and action contexts
//   - github.com/dmitrymomot/cookiesession/core/handler: handler, response and middleware types
//   - github.com/dmitrymomot/cookiesession/core/response: HTML, JSON, templ, redirect and error responses
//   - github.com/dmitrymomot/cookiesession/core/health: JSON health check handler
//   - github.com/dmitrymomot/cookiesession/core/server: HTTP server with graceful shutdown
//   - github.com/dmitrymomot/cookiesession/core/config: environment loading with .env support
//   - github.com/dmitrymomot/cookiesession/core/logger: slog construction and attribute helpers
//
// Middleware:
//
//   - github.com/dmitrymomot/cookiesession/middleware: request IDs, access logs, security
//     headers, session refresh, session guard and rate limiting
//
// Utilities:
//
//   - github.com/dmitrymomot/cookiesession/pkg/token: HS256 session token codec with key rotation
//   - github.com/dmitrymomot/cookiesession/pkg/ratelimiter: token bucket limiter with memory and Redis stores
//   - github.com/dmitrymomot/cookiesession/pkg/clientip: client IP extraction behind proxies
//
// Integrations:
//
//   - github.com/dmitrymomot/cookiesession/integration/database/redis: Redis connection and healthcheck
//
// # Demo
//
// app/demo wires everything into a small site with a login form, a
// protected page and flash notifications; cmd/sessiondemo runs it:
//
//	SESSION_SECRET=change-me go run ./cmd/sessiondemo
package cookiesession
