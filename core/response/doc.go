// Package response provides constructors for handler.Response values:
// plain text, HTML, JSON, templ components, redirects and errors.
//
// # Basic Usage
//
//	func home(ctx *router.PageContext) handler.Response {
//		return response.Templ(views.Home())
//	}
//
//	func save(ctx *router.ActionContext) handler.Response {
//		return response.RedirectSeeOther("/protected")
//	}
//
// # Errors
//
// Returning response.Error(err) hands err to the router's error handler.
// HTTPError values and errors implementing StatusCode() int keep their
// status; everything else is a 500:
//
//	return response.Error(response.ErrUnauthorized.WithMessage("Invalid username or password"))
//
// ErrorHandler, JSONErrorHandler and TemplErrorHandler render errors as
// text, JSON or a templ page:
//
//	r := router.New(router.WithErrorHandler(
//		response.TemplErrorHandler[handler.Context](views.ErrorPage),
//	))
//
// # Templ
//
// Templ and TemplWithStatus render into a buffer before writing, so a
// component that fails halfway produces an error response rather than a
// truncated page.
package response
