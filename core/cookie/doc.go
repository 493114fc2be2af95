// Package cookie provides capability-scoped HTTP cookie access.
//
// Reading and writing cookies are separate capabilities. Every handler can
// read request cookies through the Jar interface, while only trusted code
// (form actions and the per-request refresh interceptor) receives a
// *MutableJar that can queue Set-Cookie headers on the response.
//
// # Basic Usage
//
//	policy := cookie.NewPolicy(cookie.WithSecure(true))
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//		jar := policy.Jar(w, r)
//		if err := jar.Set("theme", "dark", cookie.WithMaxAge(3600)); err != nil {
//			// cookie.ErrCookieTooLarge when the header exceeds 4KB
//		}
//		v, _ := jar.Get("theme") // "dark": reads observe earlier writes
//	}
//
// Read-only code takes a Jar:
//
//	func render(jar cookie.Jar) {
//		v, err := jar.Get("theme")
//		if errors.Is(err, cookie.ErrCookieNotFound) {
//			// not set
//		}
//	}
//
// # Encoding
//
// Values are percent-encoded on write and decoded on read, matching
// encodeURIComponent so browser scripts see the same text. Raw values that
// aren't valid escapes are returned as-is.
//
// # Defaults
//
// NewPolicy starts from Path "/", HttpOnly, SameSite Lax and a 4KB limit on
// the full Set-Cookie header. Per-call options override the defaults:
//
//	jar.Set("flash", v, cookie.WithHTTPOnly(false), cookie.WithMaxAge(60))
//
// # Configuration
//
// Config loads the policy from the environment:
//
//	COOKIE_DOMAIN=example.com
//	COOKIE_SECURE=true
//	COOKIE_MAX_SIZE=4096
//
//	cfg := config.MustLoad[cookie.Config]()
//	policy := cookie.NewPolicyFromConfig(cfg)
package cookie
