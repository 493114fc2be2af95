// Package handler provides the types shared by the router, middleware and
// application handlers.
//
// A handler receives a typed context and returns a Response, a deferred
// render function. Errors returned by a Response go to the router's error
// handler.
//
//	type Response func(w http.ResponseWriter, r *http.Request) error
//	type HandlerFunc[C Context] func(ctx C) Response
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// # Cookie capabilities
//
// Context.Cookies returns a read-only cookie.Jar. Only contexts that also
// implement MutableContext can write cookies:
//
//	func page(ctx handler.Context) handler.Response {
//		v, _ := ctx.Cookies().Get("theme") // fine
//		return response.String("ok")
//	}
//
//	func action(ctx handler.MutableContext) handler.Response {
//		_ = ctx.MutableCookies().Set("theme", "dark")
//		return response.RedirectSeeOther("/")
//	}
//
// Middleware is generic over the context, so the same middleware can wrap
// read-only pages and actions:
//
//	func Timing[C handler.Context](next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//		return func(ctx C) handler.Response {
//			start := time.Now()
//			resp := next(ctx)
//			slog.Info("handled", "took", time.Since(start))
//			return resp
//		}
//	}
package handler
