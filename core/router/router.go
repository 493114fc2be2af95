package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/dmitrymomot/cookiesession/core/cookie"
	"github.com/dmitrymomot/cookiesession/core/handler"
	"github.com/dmitrymomot/cookiesession/core/logger"
)

// Router dispatches requests to pages and actions.
//
// Pages answer GET and HEAD and receive a *PageContext that can only read
// cookies. Actions answer POST and receive an *ActionContext that can also
// write them. Request-level interceptors wrap every request.
type Router struct {
	mux          *mux.Router
	errorHandler handler.ErrorHandler[handler.Context]
	logger       *slog.Logger
	policy       cookie.Policy
	interceptors []func(http.Handler) http.Handler
	handler      http.Handler
}

// New creates a router.
func New(opts ...Option) *Router {
	rt := &Router{
		mux:          mux.NewRouter(),
		errorHandler: defaultErrorHandler,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		policy:       cookie.NewPolicy(),
	}

	for _, opt := range opts {
		opt(rt)
	}

	rt.mux.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler(newPageContext(newResponseWriter(w), r), ErrNotFound)
	})
	rt.mux.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler(newPageContext(newResponseWriter(w), r), ErrMethodNotAllowed)
	})

	rt.rebuild()
	return rt
}

// Use appends request-level interceptors. Call it before serving.
func (rt *Router) Use(middlewares ...func(http.Handler) http.Handler) {
	rt.interceptors = append(rt.interceptors, middlewares...)
	rt.rebuild()
}

// Page registers a read-only GET/HEAD handler.
func (rt *Router) Page(path string, h handler.HandlerFunc[*PageContext], middlewares ...handler.Middleware[*PageContext]) {
	fn := handler.Chain(h, middlewares...)
	rt.mux.Handle(path, serve(rt, fn, func(w http.ResponseWriter, r *http.Request) *PageContext {
		return newPageContext(w, r)
	})).Methods(http.MethodGet, http.MethodHead)
}

// Action registers a POST handler holding the cookie-write capability.
func (rt *Router) Action(path string, h handler.HandlerFunc[*ActionContext], middlewares ...handler.Middleware[*ActionContext]) {
	fn := handler.Chain(h, middlewares...)
	rt.mux.Handle(path, serve(rt, fn, func(w http.ResponseWriter, r *http.Request) *ActionContext {
		return newActionContext(w, r, rt.policy)
	})).Methods(http.MethodPost)
}

// Handle mounts a plain http.Handler for all methods, e.g. static assets.
func (rt *Router) Handle(path string, h http.Handler) {
	rt.mux.PathPrefix(path).Handler(h)
}

// CookiePolicy returns the policy used for action jars and interceptors.
func (rt *Router) CookiePolicy() cookie.Policy {
	return rt.policy
}

// ServeHTTP implements http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.handler.ServeHTTP(w, r)
}

func (rt *Router) rebuild() {
	var h http.Handler = rt.mux
	for i := len(rt.interceptors) - 1; i >= 0; i-- {
		h = rt.interceptors[i](h)
	}
	rt.handler = h
}

func serve[C handler.Context](rt *Router, fn handler.HandlerFunc[C], newCtx func(http.ResponseWriter, *http.Request) C) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := newCtx(ww, r)

		defer func() {
			if p := recover(); p != nil {
				panicErr := &panicError{
					value: p,
					stack: debug.Stack(),
				}

				if ww.Written() {
					rt.logger.ErrorContext(r.Context(), "panic after response written",
						logger.Component("router"),
						logger.Error(panicErr),
						logger.Method(r.Method),
						logger.Path(r.URL.Path),
						logger.StatusCode(ww.Status()),
						slog.String("stack", string(panicErr.stack)),
					)
					return
				}
				rt.errorHandler(ctx, panicErr)
			}
		}()

		resp := fn(ctx)
		if resp == nil {
			rt.errorHandler(ctx, ErrNilResponse)
			return
		}

		if err := resp(ww, ctx.Request()); err != nil {
			if ww.Written() {
				rt.logger.ErrorContext(r.Context(), "response failed after write",
					logger.Component("router"),
					logger.Error(err),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
				)
				return
			}
			rt.errorHandler(ctx, err)
		}
	})
}
