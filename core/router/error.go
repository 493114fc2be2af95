package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/cookiesession/core/handler"
)

var (
	ErrMethodNotAllowed error = routeError{msg: "method not allowed", status: http.StatusMethodNotAllowed}
	ErrNotFound         error = routeError{msg: "not found", status: http.StatusNotFound}
	ErrNilResponse            = errors.New("nil response")
)

// routeError carries its HTTP status so any error handler can map it.
type routeError struct {
	msg    string
	status int
}

func (e routeError) Error() string   { return e.msg }
func (e routeError) StatusCode() int { return e.status }

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler writes err as plain text.
func defaultErrorHandler(ctx handler.Context, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	case errors.As(err, &sc):
		status = sc.StatusCode()
	}

	http.Error(w, http.StatusText(status), status)
}

// PanicError interface allows external error handlers to detect and handle panics.
// When a panic is recovered by the router, it's wrapped in an error that implements
// this interface, providing access to the original panic value and stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
