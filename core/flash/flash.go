package flash

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/cookiesession/core/cookie"
)

// Defaults for the flash cookie.
const (
	DefaultCookieName = "flash"
	DefaultMaxAge     = 60 * time.Second
	DefaultLimit      = 10
)

// ErrMessageTooLarge is returned when a single message can't fit in the cookie.
var ErrMessageTooLarge = errors.New("flash message exceeds cookie size limit")

// Config holds flash settings loaded from the environment.
type Config struct {
	CookieName string        `env:"FLASH_COOKIE_NAME" envDefault:"flash"`
	MaxAge     time.Duration `env:"FLASH_MAX_AGE" envDefault:"60s"`
	Limit      int           `env:"FLASH_LIMIT" envDefault:"10"`
}

// Flash is a short-lived list of notification strings kept in a cookie that
// client script can read. It is safe for concurrent use.
type Flash struct {
	name   string
	maxAge time.Duration
	limit  int
	secure bool
}

// Option configures a Flash.
type Option func(*Flash)

// WithCookieName sets the cookie name.
func WithCookieName(name string) Option {
	return func(f *Flash) {
		if name != "" {
			f.name = name
		}
	}
}

// WithMaxAge sets how long the browser keeps the list.
func WithMaxAge(d time.Duration) Option {
	return func(f *Flash) {
		if d > 0 {
			f.maxAge = d
		}
	}
}

// WithLimit sets the maximum number of messages kept.
func WithLimit(n int) Option {
	return func(f *Flash) {
		if n > 0 {
			f.limit = n
		}
	}
}

// WithSecure marks the cookie Secure.
func WithSecure(secure bool) Option {
	return func(f *Flash) {
		f.secure = secure
	}
}

// New creates a flash channel.
func New(opts ...Option) *Flash {
	f := &Flash{
		name:   DefaultCookieName,
		maxAge: DefaultMaxAge,
		limit:  DefaultLimit,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFromConfig creates a flash channel from cfg. Options override config values.
func NewFromConfig(cfg Config, opts ...Option) *Flash {
	all := append([]Option{
		WithCookieName(cfg.CookieName),
		WithMaxAge(cfg.MaxAge),
		WithLimit(cfg.Limit),
	}, opts...)
	return New(all...)
}

// CookieName returns the flash cookie name.
func (f *Flash) CookieName() string {
	return f.name
}

// Append adds msg to the end of the list, keeping only the newest entries.
// Oldest entries are also dropped while the cookie would exceed the jar's
// size limit.
func (f *Flash) Append(jar *cookie.MutableJar, msg string) error {
	raw, err := jar.Get(f.name)
	if err != nil {
		raw = ""
	}

	list := append(parse(raw), msg)
	if len(list) > f.limit {
		list = list[len(list)-f.limit:]
	}

	opts := f.cookieOptions()
	for len(list) > 0 {
		data, err := json.Marshal(list)
		if err != nil {
			return err
		}
		if jar.Fits(f.name, string(data), opts...) {
			return jar.Set(f.name, string(data), opts...)
		}
		if len(list) == 1 {
			break
		}
		list = list[1:]
	}

	return ErrMessageTooLarge
}

// Read returns the current list without modifying it. The result is never nil.
func (f *Flash) Read(jar cookie.Jar) []string {
	raw, err := jar.Get(f.name)
	if err != nil {
		return []string{}
	}
	return parse(raw)
}

func (f *Flash) cookieOptions() []cookie.Option {
	return []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(false),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithSecure(f.secure),
		cookie.WithTTL(f.maxAge),
	}
}

// parse accepts a JSON array of strings, a single JSON string, or any other
// value, which is kept verbatim as one legacy entry.
func parse(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		list := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return list
	}

	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		return []string{single}
	}

	return []string{raw}
}
