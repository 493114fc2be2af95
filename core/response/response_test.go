package response_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesession/core/cookie"
	"github.com/dmitrymomot/cookiesession/core/response"
)

// testContext is a simple test implementation of handler.Context
type testContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{Context: r.Context(), w: w, r: r}
}

func (tc *testContext) SetValue(key, val any)              {}
func (tc *testContext) Request() *http.Request             { return tc.r }
func (tc *testContext) ResponseWriter() http.ResponseWriter { return tc.w }
func (tc *testContext) Param(key string) string            { return "" }
func (tc *testContext) Cookies() cookie.Jar                { return cookie.FromRequest(tc.r) }

type customStatusError struct {
	status int
}

func (e customStatusError) Error() string   { return fmt.Sprintf("custom %d", e.status) }
func (e customStatusError) StatusCode() int { return e.status }

func TestBasicResponses(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, response.String("hello")(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "hello", w.Body.String())
	})

	t.Run("html with status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, response.HTMLWithStatus("<p>x</p>", http.StatusAccepted)(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>x</p>", w.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, response.JSON(map[string]string{"status": "ok"})(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("error passes through", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		w := httptest.NewRecorder()

		err := response.Error(boom)(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, boom)
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "found", status: http.StatusFound},
		{name: "see other", status: http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/login", nil)

			resp := response.Redirect("/protected")
			if tt.status == http.StatusSeeOther {
				resp = response.RedirectSeeOther("/protected")
			}
			require.NoError(t, resp(w, r))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "/protected", w.Header().Get("Location"))
		})
	}

	t.Run("invalid status falls back to 302", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, response.RedirectWithStatus("/", http.StatusOK)(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusFound, w.Code)
	})
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("renders component", func(t *testing.T) {
		t.Parallel()
		c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<h1>Hi</h1>")
			return err
		})

		w := httptest.NewRecorder()
		require.NoError(t, response.TemplWithStatus(c, http.StatusUnauthorized)(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<h1>Hi</h1>", w.Body.String())
	})

	t.Run("render error leaves response unwritten", func(t *testing.T) {
		t.Parallel()
		c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return errors.New("template failed")
		})

		w := httptest.NewRecorder()
		err := response.Templ(c)(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Error(t, err)
		assert.Empty(t, w.Body.String())
		assert.False(t, w.Flushed)
		assert.Empty(t, w.Header().Get("Content-Type"))
	})
}

func TestErrorHandlers(t *testing.T) {
	t.Parallel()

	t.Run("http error keeps status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		ctx := newTestContext(w, httptest.NewRequest(http.MethodPost, "/login", nil))

		response.ErrorHandler(ctx, response.ErrUnauthorized.WithMessage("Invalid username or password"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid username or password", w.Body.String())
	})

	t.Run("status code interface", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		ctx := newTestContext(w, httptest.NewRequest(http.MethodGet, "/", nil))

		response.ErrorHandler(ctx, fmt.Errorf("wrapped: %w", customStatusError{status: http.StatusTooManyRequests}))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("plain error is 500", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		ctx := newTestContext(w, httptest.NewRequest(http.MethodGet, "/", nil))

		response.ErrorHandler(ctx, errors.New("db down"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), w.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		ctx := newTestContext(w, httptest.NewRequest(http.MethodGet, "/", nil))

		response.JSONErrorHandler(ctx, response.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "not_found", body["code"])
	})

	t.Run("templ", func(t *testing.T) {
		t.Parallel()
		page := func(status int, message string) templ.Component {
			return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				_, err := fmt.Fprintf(w, "%d %s", status, message)
				return err
			})
		}
		w := httptest.NewRecorder()
		ctx := newTestContext(w, httptest.NewRequest(http.MethodGet, "/", nil))

		response.TemplErrorHandler[*testContext](page)(ctx, errors.New("secret cause"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "500 Internal Server Error", w.Body.String())
		assert.NotContains(t, w.Body.String(), "secret")
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	e := response.AsHTTPError(errors.New("cause"))
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, "cause", e.Details["cause"])

	custom := response.NewHTTPError(http.StatusUnauthorized, "nope")
	assert.Equal(t, "unauthorized", custom.Code)
	assert.Equal(t, "nope", custom.Message)

	// Predefined values are not mutated by WithError.
	_ = response.ErrBadRequest.WithError(errors.New("x"))
	assert.Nil(t, response.ErrBadRequest.Details)
}
