package handler

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/cookiesession/core/cookie"
)

// Context defines the contract for request contexts in the framework.
// Every context can read cookies; writing requires a context that also
// implements MutableContext.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
	Cookies() cookie.Jar
}

// MutableContext is a Context that holds the cookie-write capability.
type MutableContext interface {
	Context
	MutableCookies() *cookie.MutableJar
}
