package health_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cookiesession/core/health"
	"github.com/dmitrymomot/cookiesession/core/router"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		checks []health.Check
		status int
		body   string
	}{
		{
			name:   "liveness",
			status: http.StatusOK,
			body:   `{"status":"ok"}`,
		},
		{
			name:   "all pass",
			checks: []health.Check{{Name: "redis", Probe: ok}},
			status: http.StatusOK,
			body:   `{"status":"ok","checks":{"redis":"ok"}}`,
		},
		{
			name:   "one fails",
			checks: []health.Check{{Name: "redis", Probe: down}, {Name: "store", Probe: ok}},
			status: http.StatusServiceUnavailable,
			body:   `{"status":"unavailable","checks":{"redis":"unavailable","store":"ok"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := router.New()
			r.Page("/healthz", health.Handler[*router.PageContext](log, tt.checks...))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}
