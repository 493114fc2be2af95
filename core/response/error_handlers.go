package response

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cookiesession/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// AsHTTPError converts any error to an HTTPError.
// Errors that are not HTTPError or don't carry a status become 500s.
func AsHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	return baseErr.WithError(err)
}

// ErrorHandler is the default error handler that returns plain text errors.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := AsHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler returns errors as JSON responses.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := AsHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}

// TemplErrorHandler renders errors with a templ component built by page.
// The details map is not passed to page so internal causes never reach the browser.
func TemplErrorHandler[C handler.Context](page func(status int, message string) templ.Component) handler.ErrorHandler[C] {
	return func(ctx C, err error) {
		httpErr := AsHTTPError(err)
		Render(ctx, TemplWithStatus(page(httpErr.Status, httpErr.Message), httpErr.Status))
	}
}
