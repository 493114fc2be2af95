package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/cookiesession/core/handler"
	"github.com/dmitrymomot/cookiesession/core/logger"
	"github.com/dmitrymomot/cookiesession/core/response"
	"github.com/dmitrymomot/cookiesession/pkg/clientip"
	"github.com/dmitrymomot/cookiesession/pkg/ratelimiter"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Limiter is the rate limiting implementation to use
	Limiter ratelimiter.RateLimiter
	// KeyExtractor defines how to extract the rate limiting key from requests (default: client IP)
	KeyExtractor func(ctx handler.Context) string
	// ErrorHandler defines how to handle rate limit violations (default: 429 Too Many Requests)
	ErrorHandler func(ctx handler.Context, result *ratelimiter.Result) handler.Response
	// SetHeaders determines whether to include rate limit information in response headers
	SetHeaders bool
	// FailOpen lets requests through when the limiter store is unavailable
	FailOpen bool
	// Logger reports store failures (default: slog.Default())
	Logger *slog.Logger
}

// RateLimit enforces per-key request limits, keyed by client IP unless
// configured otherwise. Refused requests get 429 with Retry-After.
// Panics if no limiter is provided.
//
//	limiter, _ := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	r.Action("/login", login, middleware.RateLimit[*router.ActionContext](middleware.RateLimitConfig{
//		Limiter:    limiter,
//		SetHeaders: true,
//	}))
func RateLimit[C handler.Context](cfg RateLimitConfig) handler.Middleware[C] {
	if cfg.Limiter == nil {
		panic("ratelimit middleware: limiter is required")
	}

	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = func(ctx handler.Context) string {
			return clientip.GetIP(ctx.Request())
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx handler.Context, result *ratelimiter.Result) handler.Response {
			err := response.ErrTooManyRequests.WithMessage("Too many attempts. Please try again later.")
			if result != nil && result.RetryAfter() > 0 {
				err = err.WithDetails(map[string]any{
					"retry_after": retryAfterSeconds(result),
				})
			}
			return response.Error(err)
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			key := cfg.KeyExtractor(ctx)
			result, err := cfg.Limiter.Allow(ctx, key)
			if err != nil {
				cfg.Logger.ErrorContext(ctx, "rate limiter unavailable",
					logger.Component("ratelimit"),
					logger.Error(err),
				)
				if cfg.FailOpen {
					return next(ctx)
				}
				return response.Error(response.ErrServiceUnavailable)
			}

			if !result.Allowed() {
				return withRateLimitHeaders(cfg.ErrorHandler(ctx, result), result, true)
			}

			return withRateLimitHeaders(next(ctx), result, cfg.SetHeaders)
		}
	}
}

// withRateLimitHeaders adds X-RateLimit-* headers when full is set.
// Retry-After is always sent on refusals.
func withRateLimitHeaders(resp handler.Response, result *ratelimiter.Result, full bool) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if full {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
		}

		if !result.Allowed() {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(result)))
		}

		return resp(w, r)
	}
}

// retryAfterSeconds rounds up so clients never retry too early.
func retryAfterSeconds(result *ratelimiter.Result) int {
	d := result.RetryAfter()
	secs := int(d.Seconds())
	if d > 0 && float64(secs) < d.Seconds() {
		secs++
	}
	return max(secs, 1)
}
