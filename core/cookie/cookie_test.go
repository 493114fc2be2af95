package cookie_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesession/core/cookie"
)

func TestMutableJar_BasicOperations(t *testing.T) {
	t.Parallel()

	t.Run("set and get simple cookie", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		jar := cookie.NewMutableJar(w, r)

		err := jar.Set("test", "value123")
		require.NoError(t, err)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "test", cookies[0].Name)
		assert.Equal(t, "value123", cookies[0].Value)
		assert.Equal(t, "/", cookies[0].Path)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

		value, err := cookie.FromRequest(req).Get("test")
		require.NoError(t, err)
		assert.Equal(t, "value123", value)
	})

	t.Run("get non-existent cookie", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := cookie.FromRequest(r).Get("missing")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("delete cookie", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "test", Value: "v"})
		jar := cookie.NewMutableJar(w, r)

		jar.Delete("test")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "test", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Equal(t, -1, cookies[0].MaxAge)
		assert.Equal(t, "/", cookies[0].Path)
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		jar := cookie.NewMutableJar(w, r)

		assert.ErrorIs(t, jar.Set("", "v"), cookie.ErrInvalidName)
		assert.ErrorIs(t, jar.Set("a b", "v"), cookie.ErrInvalidName)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestMutableJar_ReadYourWrites(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "a", Value: "old"})
	r.AddCookie(&http.Cookie{Name: "b", Value: "keep"})
	jar := cookie.NewMutableJar(w, r)

	require.NoError(t, jar.Set("a", "new"))
	jar.Delete("b")

	v, err := jar.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	_, err = jar.Get("b")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)

	v, err = jar.Incoming("a")
	require.NoError(t, err)
	assert.Equal(t, "old", v)

	v, err = jar.Incoming("b")
	require.NoError(t, err)
	assert.Equal(t, "keep", v)

	require.NoError(t, jar.Set("b", "again"))
	v, err = jar.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "again", v)
}

func TestMutableJar_Encoding(t *testing.T) {
	t.Parallel()

	values := []string{
		`["Signed in as Admin","Saved at 12:00:00"]`,
		"hello world; path=/",
		"ünïcødé ✓",
		"a+b=c&d",
	}

	for _, v := range values {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		jar := cookie.NewMutableJar(w, r)
		require.NoError(t, jar.Set("x", v))

		header := w.Header().Get("Set-Cookie")
		assert.NotContains(t, header, `"`)
		assert.NotContains(t, strings.SplitN(header, ";", 2)[0], " ")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", strings.SplitN(header, ";", 2)[0])

		got, err := cookie.FromRequest(req).Get("x")
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	t.Run("raw values pass through", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Cookie", "x=100%zz")

		got, err := cookie.FromRequest(r).Get("x")
		require.NoError(t, err)
		assert.Equal(t, "100%zz", got)
	})
}

func TestMutableJar_SizeLimit(t *testing.T) {
	t.Parallel()

	t.Run("accepts value under limit", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		jar := cookie.NewMutableJar(w, r)

		assert.NoError(t, jar.Set("small", strings.Repeat("a", 1000)))
	})

	t.Run("rejects value over limit", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		jar := cookie.NewMutableJar(w, r)

		big := strings.Repeat("a", 5000)
		assert.False(t, jar.Fits("large", big))

		err := jar.Set("large", big)
		require.Error(t, err)

		var sizeErr cookie.ErrCookieTooLarge
		require.True(t, errors.As(err, &sizeErr))
		assert.Equal(t, "large", sizeErr.Name)
		assert.Equal(t, cookie.MaxCookieSize, sizeErr.Max)
		assert.Greater(t, sizeErr.Size, cookie.MaxCookieSize)
		assert.Empty(t, w.Result().Cookies())

		_, err = jar.Get("large")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("custom policy limit", func(t *testing.T) {
		t.Parallel()
		policy := cookie.NewPolicy()
		policy.MaxSize = 100

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		jar := policy.Jar(w, r)

		assert.Equal(t, 100, jar.MaxSize())
		assert.Error(t, jar.Set("x", strings.Repeat("a", 120)))
	})
}

func TestMutableJar_Options(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	policy := cookie.NewPolicy(cookie.WithSecure(true), cookie.WithDomain("example.com"))
	jar := policy.Jar(w, r)

	err := jar.Set("custom", "value",
		cookie.WithPath("/api"),
		cookie.WithMaxAge(7200),
		cookie.WithHTTPOnly(false),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "/api", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, 7200, c.MaxAge)
	assert.True(t, c.Secure)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	// Per-call options never leak into the policy defaults.
	assert.True(t, policy.Defaults.HttpOnly)
	assert.Equal(t, "/", policy.Defaults.Path)
}

func TestConfig(t *testing.T) {
	t.Parallel()

	t.Run("default config", func(t *testing.T) {
		t.Parallel()
		cfg := cookie.DefaultConfig()
		assert.Equal(t, http.SameSiteLaxMode, cfg.SameSite)
		assert.Equal(t, cookie.MaxCookieSize, cfg.MaxSize)
		assert.False(t, cfg.Secure)
	})

	t.Run("policy from config", func(t *testing.T) {
		t.Parallel()
		cfg := cookie.Config{
			Domain:   "example.com",
			Secure:   true,
			SameSite: http.SameSiteStrictMode,
			MaxSize:  2048,
		}

		p := cookie.NewPolicyFromConfig(cfg)
		assert.Equal(t, "example.com", p.Defaults.Domain)
		assert.True(t, p.Defaults.Secure)
		assert.Equal(t, http.SameSiteStrictMode, p.Defaults.SameSite)
		assert.Equal(t, 2048, p.MaxSize)
		assert.Equal(t, "/", p.Defaults.Path)
		assert.True(t, p.Defaults.HttpOnly)
	})
}
