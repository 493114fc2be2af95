package router

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrymomot/cookiesession/core/cookie"
	"github.com/dmitrymomot/cookiesession/core/handler"
)

type baseContext struct {
	context.Context
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
}

func newBaseContext(w http.ResponseWriter, r *http.Request) baseContext {
	return baseContext{
		Context: r.Context(),
		w:       w,
		r:       r,
		params:  mux.Vars(r),
	}
}

// Request returns the request carrying every value stored with SetValue.
func (c *baseContext) Request() *http.Request {
	return c.r
}

func (c *baseContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns a path variable, or "" when the route has none by that name.
func (c *baseContext) Param(key string) string {
	return c.params[key]
}

// SetValue stores a request-scoped value visible through Value and Request().Context().
func (c *baseContext) SetValue(key, val any) {
	c.Context = context.WithValue(c.Context, key, val)
	c.r = c.r.WithContext(c.Context)
}

// PageContext is the context of a page render. It can read cookies but
// holds no capability to write them.
type PageContext struct {
	baseContext
}

func newPageContext(w http.ResponseWriter, r *http.Request) *PageContext {
	return &PageContext{baseContext: newBaseContext(w, r)}
}

// Cookies returns a read-only view of the request cookies.
func (c *PageContext) Cookies() cookie.Jar {
	return cookie.FromRequest(c.r)
}

// ActionContext is the context of a form action. It holds the
// cookie-write capability for the current response.
type ActionContext struct {
	baseContext
	jar *cookie.MutableJar
}

func newActionContext(w http.ResponseWriter, r *http.Request, policy cookie.Policy) *ActionContext {
	return &ActionContext{
		baseContext: newBaseContext(w, r),
		jar:         policy.Jar(w, r),
	}
}

// Cookies returns the action's jar as a read-only view. Reads observe
// writes made earlier in the same action.
func (c *ActionContext) Cookies() cookie.Jar {
	return c.jar
}

// MutableCookies returns the cookie-write capability.
func (c *ActionContext) MutableCookies() *cookie.MutableJar {
	return c.jar
}

var (
	_ handler.Context        = (*PageContext)(nil)
	_ handler.MutableContext = (*ActionContext)(nil)
)
