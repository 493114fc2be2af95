package cookie

import "net/http"

// Config provides environment-based configuration for the cookie policy.
type Config struct {
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
	MaxSize  int           `env:"COOKIE_MAX_SIZE" envDefault:"4096"`
}

// DefaultConfig returns a Config with secure defaults.
func DefaultConfig() Config {
	return Config{
		SameSite: http.SameSiteLaxMode,
		MaxSize:  MaxCookieSize,
	}
}

// NewPolicyFromConfig creates a Policy from configuration.
// Only non-zero config values override defaults.
func NewPolicyFromConfig(cfg Config, opts ...Option) Policy {
	configOpts := make([]Option, 0, 3+len(opts))

	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}
	configOpts = append(configOpts, opts...)

	p := NewPolicy(configOpts...)
	if cfg.MaxSize > 0 {
		p.MaxSize = cfg.MaxSize
	}
	return p
}
