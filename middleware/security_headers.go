package middleware

import (
	"maps"
	"net/http"
)

// SecurityHeadersConfig configures the security headers interceptor.
// Empty fields are not sent.
type SecurityHeadersConfig struct {
	// Skip defines a function to skip the interceptor for specific requests
	Skip func(r *http.Request) bool

	ContentTypeOptions      string
	FrameOptions            string
	StrictTransportSecurity string
	ContentSecurityPolicy   string
	ReferrerPolicy          string
	CrossOriginOpenerPolicy string

	// CacheControl keeps pages that render session data out of shared caches
	CacheControl string

	// CustomHeaders allows adding additional headers
	CustomHeaders map[string]string

	// IsDevelopment drops HSTS so plain-HTTP localhost keeps working
	IsDevelopment bool
}

// DefaultSecurityHeaders suits server-rendered pages with inline styles
// and no third-party content.
var DefaultSecurityHeaders = SecurityHeadersConfig{
	ContentTypeOptions:      "nosniff",
	FrameOptions:            "DENY",
	StrictTransportSecurity: "max-age=31536000; includeSubDomains",
	ContentSecurityPolicy:   "default-src 'self'; style-src 'self' 'unsafe-inline'; frame-ancestors 'none'; form-action 'self'; base-uri 'self'",
	ReferrerPolicy:          "strict-origin-when-cross-origin",
	CrossOriginOpenerPolicy: "same-origin",
	CacheControl:            "no-store",
}

// SecurityHeaders sets DefaultSecurityHeaders on every response.
func SecurityHeaders() func(http.Handler) http.Handler {
	return SecurityHeadersWithConfig(DefaultSecurityHeaders)
}

// SecurityHeadersWithConfig sets the configured headers before the
// request is handled, so error pages carry them too.
func SecurityHeadersWithConfig(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	if cfg.IsDevelopment {
		cfg.StrictTransportSecurity = ""
	}

	headers := make(map[string]string)
	set := func(name, value string) {
		if value != "" {
			headers[name] = value
		}
	}
	set("X-Content-Type-Options", cfg.ContentTypeOptions)
	set("X-Frame-Options", cfg.FrameOptions)
	set("Strict-Transport-Security", cfg.StrictTransportSecurity)
	set("Content-Security-Policy", cfg.ContentSecurityPolicy)
	set("Referrer-Policy", cfg.ReferrerPolicy)
	set("Cross-Origin-Opener-Policy", cfg.CrossOriginOpenerPolicy)
	set("Cache-Control", cfg.CacheControl)
	maps.Copy(headers, cfg.CustomHeaders)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip == nil || !cfg.Skip(r) {
				h := w.Header()
				for key, value := range headers {
					h.Set(key, value)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
