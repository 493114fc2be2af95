package demo

import (
	"errors"

	"github.com/dmitrymomot/cookiesession/core/handler"
	"github.com/dmitrymomot/cookiesession/core/logger"
	"github.com/dmitrymomot/cookiesession/core/response"
	"github.com/dmitrymomot/cookiesession/core/router"
	"github.com/dmitrymomot/cookiesession/core/session"
	"github.com/dmitrymomot/cookiesession/middleware"
	"github.com/dmitrymomot/cookiesession/pkg/clientip"
)

func (a *App) landing(ctx *router.PageContext) handler.Response {
	p := a.sessions.Get(ctx.Cookies())
	return response.Templ(landingPage(a.config.AppName, p, a.flash.Read(ctx.Cookies())))
}

func (a *App) protected(ctx *router.PageContext) handler.Response {
	p, ok := middleware.GetSession(ctx)
	if !ok {
		return response.RedirectSeeOther("/")
	}
	return response.Templ(protectedPage(
		a.config.AppName,
		p.User.Name,
		p.Remaining(a.now()),
		a.flash.Read(ctx.Cookies()),
	))
}

func (a *App) login(ctx *router.ActionContext) handler.Response {
	r := ctx.Request()
	if err := r.ParseForm(); err != nil {
		return response.Error(response.ErrBadRequest.WithMessage("Invalid form submission"))
	}

	jar := ctx.MutableCookies()
	creds := session.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	if err := a.sessions.Login(ctx, jar, creds); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			a.logger.WarnContext(ctx, "login failed",
				logger.Component("auth"),
				logger.Event("login_failed"),
				logger.ClientIP(clientip.GetIP(r)),
			)
			return response.Error(response.ErrUnauthorized.WithMessage("Invalid username or password"))
		}
		return response.Error(err)
	}

	p := a.sessions.Get(jar)
	if p == nil {
		return response.Error(session.ErrIssueSession)
	}

	a.logger.InfoContext(ctx, "user signed in",
		logger.Component("auth"),
		logger.Event("login"),
		logger.User(p.User.Name),
	)
	a.notify(ctx, "Signed in as "+p.User.Name)

	return response.RedirectSeeOther("/protected")
}

func (a *App) save(ctx *router.ActionContext) handler.Response {
	a.notify(ctx, "Saved at "+a.now().Format("15:04:05"))
	return response.RedirectSeeOther("/protected")
}

func (a *App) logout(ctx *router.ActionContext) handler.Response {
	a.sessions.Logout(ctx.MutableCookies())
	return response.RedirectSeeOther("/")
}

// notify appends a flash message. A message that cannot be stored is
// logged and dropped; the action itself still succeeds.
func (a *App) notify(ctx *router.ActionContext, msg string) {
	if err := a.flash.Append(ctx.MutableCookies(), msg); err != nil {
		a.logger.WarnContext(ctx, "flash message dropped",
			logger.Component("flash"),
			logger.Error(err),
		)
	}
}
