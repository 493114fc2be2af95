package demo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cookiesession/pkg/token"
)

const styles = `body{font-family:system-ui,sans-serif;max-width:40rem;margin:3rem auto;padding:0 1rem;color:#222}
form{margin:1rem 0}label{display:block;margin:.5rem 0}input{padding:.3rem;width:16rem}
button{padding:.4rem 1rem}ul.flash{background:#eef6ee;border:1px solid #9c9;padding:.5rem 2rem}
.error{color:#a00}`

// layout wraps body in the shared page chrome.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, "<title>%s</title><style>%s</style></head><body>", templ.EscapeString(title), styles)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func flashList(messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<ul class="flash">`)
	for _, m := range messages {
		fmt.Fprintf(&b, "<li>%s</li>", templ.EscapeString(m))
	}
	b.WriteString("</ul>")
	return b.String()
}

func landingPage(appName string, p *token.Payload, messages []string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>%s</h1>", templ.EscapeString(appName))
		b.WriteString(flashList(messages))

		if p != nil && p.Authenticated() {
			fmt.Fprintf(&b, `<p>You are already signed in as <strong>%s</strong>. <a href="/protected">Continue</a></p>`,
				templ.EscapeString(p.User.Name))
		}

		b.WriteString(`<form method="post" action="/login">`)
		b.WriteString(`<label>Username <input name="username" autocomplete="username" required></label>`)
		b.WriteString(`<label>Password <input name="password" type="password" autocomplete="current-password" required></label>`)
		b.WriteString(`<button type="submit">Sign in</button></form>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout(appName, body)
}

func protectedPage(appName, userName string, remaining time.Duration, messages []string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>Welcome, %s</h1>", templ.EscapeString(userName))
		b.WriteString(flashList(messages))
		fmt.Fprintf(&b, "<p>Session expires in %s.</p>", formatRemaining(remaining))
		b.WriteString(`<form method="post" action="/protected/save"><button type="submit">Save</button></form>`)
		b.WriteString(`<form method="post" action="/logout"><button type="submit">Sign out</button></form>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout(appName, body)
}

func (a *App) errorPage(status int, message string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>%d %s</h1>", status, templ.EscapeString(http.StatusText(status)))
		fmt.Fprintf(&b, `<p class="error">%s</p>`, templ.EscapeString(message))
		b.WriteString(`<p><a href="/">Back to the start page</a></p>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout(a.config.AppName, body)
}

// formatRemaining renders d as "9m30s", never negative.
func formatRemaining(d time.Duration) string {
	return max(d, 0).Round(time.Second).String()
}
