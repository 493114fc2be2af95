// Package router wires pages and form actions onto gorilla/mux.
//
// The router separates read-only page renders from trusted actions. A page
// handler receives a *PageContext whose Cookies method returns a read-only
// cookie.Jar. An action handler receives an *ActionContext that additionally
// exposes MutableCookies, the only way application code can write a cookie.
//
//	r := router.New(
//		router.WithErrorHandler(response.ErrorHandler[handler.Context]),
//		router.WithCookieOptions(cookie.WithSecure(true)),
//	)
//	r.Use(middleware.RequestID(), middleware.Logging(log))
//
//	r.Page("/", home)
//	r.Page("/protected", protected, middleware.RequireSession[*router.PageContext](mgr, "/"))
//	r.Action("/login", login)
//
// Pages answer GET and HEAD; actions answer POST. Unknown paths and wrong
// methods go to the error handler as ErrNotFound and ErrMethodNotAllowed.
//
// # Interceptors
//
// Use and WithMiddleware add plain func(http.Handler) http.Handler
// interceptors that run for every request before routing. The session
// refresh interceptor is one of them.
//
// # Errors and panics
//
// A Response returning an error, a nil Response, and a recovered panic all
// go to the error handler unless the response was already written, in which
// case the failure is logged. Recovered panics implement PanicError.
package router
