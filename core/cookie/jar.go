package cookie

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MaxCookieSize is the maximum size for a cookie (4KB).
const MaxCookieSize = 4096

// Jar is read access to the cookies of the current request.
// Rendering code only ever receives a Jar.
type Jar interface {
	Get(name string) (string, error)
}

// Policy carries the cookie defaults shared by every jar of an application.
type Policy struct {
	Defaults Options
	MaxSize  int
}

// NewPolicy returns a policy with secure defaults (Path "/", HttpOnly,
// SameSite Lax, 4KB limit) modified by opts.
func NewPolicy(opts ...Option) Policy {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return Policy{
		Defaults: applyOptions(defaults, opts),
		MaxSize:  MaxCookieSize,
	}
}

// Jar creates the write capability for one request/response pair.
func (p Policy) Jar(w http.ResponseWriter, r *http.Request) *MutableJar {
	maxSize := p.MaxSize
	if maxSize <= 0 {
		maxSize = MaxCookieSize
	}
	return &MutableJar{
		w:        w,
		r:        r,
		defaults: p.Defaults,
		maxSize:  maxSize,
		pending:  make(map[string]pendingCookie),
	}
}

// RequestJar is a read-only view of the request's cookies.
type RequestJar struct {
	r *http.Request
}

// FromRequest returns a read-only jar over r.
func FromRequest(r *http.Request) RequestJar {
	return RequestJar{r: r}
}

// Get returns the decoded value of the named request cookie.
func (j RequestJar) Get(name string) (string, error) {
	return readRequest(j.r, name)
}

type pendingCookie struct {
	value   string
	deleted bool
}

// MutableJar is the capability to write response cookies.
// Only trusted contexts (form actions and the per-request interceptor)
// are handed one. Not safe for concurrent use.
type MutableJar struct {
	w        http.ResponseWriter
	r        *http.Request
	defaults Options
	maxSize  int
	pending  map[string]pendingCookie
}

// NewMutableJar creates a jar with the default policy modified by opts.
func NewMutableJar(w http.ResponseWriter, r *http.Request, opts ...Option) *MutableJar {
	return NewPolicy(opts...).Jar(w, r)
}

// Get returns the value written earlier through this jar, falling back to
// the request snapshot.
func (j *MutableJar) Get(name string) (string, error) {
	if p, ok := j.pending[name]; ok {
		if p.deleted {
			return "", ErrCookieNotFound
		}
		return p.value, nil
	}
	return readRequest(j.r, name)
}

// Incoming returns the value the client sent, ignoring writes made through this jar.
func (j *MutableJar) Incoming(name string) (string, error) {
	return readRequest(j.r, name)
}

// MaxSize returns the largest Set-Cookie header this jar accepts.
func (j *MutableJar) MaxSize() int {
	return j.maxSize
}

// Set queues a cookie on the response. The value is percent-encoded.
func (j *MutableJar) Set(name, value string, opts ...Option) error {
	c, err := j.build(name, value, opts)
	if err != nil {
		return err
	}

	http.SetCookie(j.w, c)
	j.pending[name] = pendingCookie{value: value}
	return nil
}

// Fits reports whether the cookie would be accepted by Set.
func (j *MutableJar) Fits(name, value string, opts ...Option) bool {
	_, err := j.build(name, value, opts)
	return err == nil
}

// Delete clears a cookie on the client.
func (j *MutableJar) Delete(name string, opts ...Option) {
	options := applyOptions(j.defaults, opts)
	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	j.pending[name] = pendingCookie{deleted: true}
}

func (j *MutableJar) build(name, value string, opts []Option) (*http.Cookie, error) {
	if name == "" || strings.ContainsAny(name, "=;, \t\r\n") {
		return nil, ErrInvalidName
	}

	options := applyOptions(j.defaults, opts)
	c := &http.Cookie{
		Name:     name,
		Value:    encodeValue(value),
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	if size := len(c.String()); size > j.maxSize {
		return nil, ErrCookieTooLarge{Name: name, Size: size, Max: j.maxSize}
	}
	return c, nil
}

func readRequest(r *http.Request, name string) (string, error) {
	if r == nil {
		return "", ErrCookieNotFound
	}
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return decodeValue(c.Value), nil
}

// encodeValue percent-encodes like JavaScript's encodeURIComponent so that
// client script can read the same values with decodeURIComponent.
func encodeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// decodeValue reverses encodeValue. Values that are not valid escapes are
// returned unchanged.
func decodeValue(v string) string {
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return v
	}
	return decoded
}
