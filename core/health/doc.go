// Package health provides a JSON health check handler.
//
//	r.Page("/healthz", health.Handler[*router.PageContext](log,
//		health.Check{Name: "redis", Probe: redis.Healthcheck(client)},
//	))
//
// Responses:
//
//	200 {"status":"ok","checks":{"redis":"ok"}}
//	503 {"status":"unavailable","checks":{"redis":"unavailable"}}
//
// Without checks the handler always answers {"status":"ok"}.
package health
