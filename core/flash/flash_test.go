package flash_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesession/core/cookie"
	"github.com/dmitrymomot/cookiesession/core/flash"
)

func newJar(raw ...string) (*cookie.MutableJar, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	if len(raw) > 0 {
		r.Header.Set("Cookie", "flash="+raw[0])
	}
	w := httptest.NewRecorder()
	return cookie.NewMutableJar(w, r), w
}

func TestFlash_Append(t *testing.T) {
	t.Parallel()

	t.Run("first message", func(t *testing.T) {
		t.Parallel()
		f := flash.New()
		jar, w := newJar()

		require.NoError(t, f.Append(jar, "Signed in as Admin"))
		assert.Equal(t, []string{"Signed in as Admin"}, f.Read(jar))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "flash", cookies[0].Name)
		assert.False(t, cookies[0].HttpOnly)
		assert.Equal(t, 60, cookies[0].MaxAge)
		assert.Equal(t, "/", cookies[0].Path)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("keeps order across requests", func(t *testing.T) {
		t.Parallel()
		f := flash.New()

		jar, w := newJar()
		require.NoError(t, f.Append(jar, "Saved at 12:00:00"))

		// next request carries the cookie written by the first
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("Cookie", strings.SplitN(w.Header().Get("Set-Cookie"), ";", 2)[0])
		jar2 := cookie.NewMutableJar(httptest.NewRecorder(), r)
		require.NoError(t, f.Append(jar2, "Saved at 12:00:05"))

		assert.Equal(t, []string{"Saved at 12:00:00", "Saved at 12:00:05"}, f.Read(jar2))
	})

	t.Run("caps at limit dropping oldest", func(t *testing.T) {
		t.Parallel()
		f := flash.New()
		jar, _ := newJar()

		for i := 1; i <= 15; i++ {
			require.NoError(t, f.Append(jar, fmt.Sprintf("m%d", i)))
		}

		want := make([]string, 0, 10)
		for i := 6; i <= 15; i++ {
			want = append(want, fmt.Sprintf("m%d", i))
		}
		assert.Equal(t, want, f.Read(jar))
	})

	t.Run("custom limit", func(t *testing.T) {
		t.Parallel()
		f := flash.New(flash.WithLimit(2))
		jar, _ := newJar()

		for _, m := range []string{"a", "b", "c"} {
			require.NoError(t, f.Append(jar, m))
		}
		assert.Equal(t, []string{"b", "c"}, f.Read(jar))
	})

	t.Run("drops oldest to fit size limit", func(t *testing.T) {
		t.Parallel()
		f := flash.New()
		jar, _ := newJar()

		big := strings.Repeat("x", 1500)
		for i := 0; i < 4; i++ {
			require.NoError(t, f.Append(jar, fmt.Sprintf("%d%s", i, big)))
		}

		list := f.Read(jar)
		require.NotEmpty(t, list)
		assert.Less(t, len(list), 4)
		assert.Equal(t, "3"+big, list[len(list)-1])
	})

	t.Run("single message too large", func(t *testing.T) {
		t.Parallel()
		f := flash.New()
		jar, w := newJar()

		err := f.Append(jar, strings.Repeat("x", 5000))
		assert.ErrorIs(t, err, flash.ErrMessageTooLarge)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("legacy string value", func(t *testing.T) {
		t.Parallel()
		f := flash.New()
		jar, _ := newJar("%22hello%22")

		require.NoError(t, f.Append(jar, "world"))
		assert.Equal(t, []string{"hello", "world"}, f.Read(jar))
	})

	t.Run("unparseable value kept verbatim", func(t *testing.T) {
		t.Parallel()
		f := flash.New()
		jar, _ := newJar("plain-text")

		require.NoError(t, f.Append(jar, "next"))
		assert.Equal(t, []string{"plain-text", "next"}, f.Read(jar))
	})
}

func TestFlash_Read(t *testing.T) {
	t.Parallel()

	f := flash.New()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "json array", raw: "%5B%22a%22%2C%22b%22%5D", want: []string{"a", "b"}},
		{name: "non-string entries skipped", raw: "%5B%22a%22%2C1%2Cnull%5D", want: []string{"a"}},
		{name: "json string", raw: "%22only%22", want: []string{"only"}},
		{name: "raw text", raw: "legacy", want: []string{"legacy"}},
		{name: "number", raw: "42", want: []string{"42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			jar, w := newJar(tt.raw)

			assert.Equal(t, tt.want, f.Read(jar))
			assert.Equal(t, tt.want, f.Read(jar))
			assert.Empty(t, w.Result().Cookies(), "read never writes")
		})
	}

	t.Run("absent cookie", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		got := f.Read(cookie.FromRequest(r))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	f := flash.NewFromConfig(flash.Config{CookieName: "notice", Limit: 3})
	assert.Equal(t, "notice", f.CookieName())

	jar, w := newJar()
	require.NoError(t, f.Append(jar, "hi"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "notice", cookies[0].Name)
	assert.Equal(t, 60, cookies[0].MaxAge, "zero max age keeps the default")
}
