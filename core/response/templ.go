package response

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cookiesession/core/handler"
)

// Templ creates an HTML response using a templ component with 200 OK status.
func Templ(component templ.Component) handler.Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus creates an HTML response using a templ component with custom status code.
// The component is rendered into a buffer first, so a render error still
// leaves the response unwritten for the error handler.
func TemplWithStatus(component templ.Component, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if component == nil {
			return ErrInternalServerError.WithMessage("nil templ component")
		}

		var buf bytes.Buffer
		if err := component.Render(r.Context(), &buf); err != nil {
			return fmt.Errorf("templ component render error: %w", err)
		}

		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, err := buf.WriteTo(w)
		return err
	}
}
