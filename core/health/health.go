package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cookiesession/core/handler"
	"github.com/dmitrymomot/cookiesession/core/logger"
	"github.com/dmitrymomot/cookiesession/core/response"
)

// Status values reported by Handler.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Check is a named dependency probe.
type Check struct {
	Name  string
	Probe func(context.Context) error
}

// Report is the JSON body written by Handler.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Handler runs every check and answers 200 with StatusOK when all pass,
// 503 with StatusUnavailable otherwise. Without checks it is a plain
// liveness probe. Failure causes are logged, never returned to the client.
func Handler[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx C) handler.Response {
		report := Report{Status: StatusOK}
		if len(checks) > 0 {
			report.Checks = make(map[string]string, len(checks))
		}

		for _, c := range checks {
			if err := c.Probe(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					slog.String("check", c.Name),
					logger.Error(err),
				)
				report.Checks[c.Name] = StatusUnavailable
				report.Status = StatusUnavailable
				continue
			}
			report.Checks[c.Name] = StatusOK
		}

		status := http.StatusOK
		if report.Status != StatusOK {
			status = http.StatusServiceUnavailable
		}
		return response.JSONWithStatus(report, status)
	}
}
