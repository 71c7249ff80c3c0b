package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/session"
)

const testSecret = "a-very-secret-key-for-testing-!"

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

// newTestEcho wires sessions and LoadViewer and exposes a route that stores
// a token, so tests can log in with a real session cookie.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(testSecret))))
	e.Use(LoadViewer(func() time.Time { return fixedNow }))
	e.POST("/_login", func(c echo.Context) error {
		if err := session.SetToken(c, c.FormValue("token")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

func loginCookies(t *testing.T, e *echo.Echo, tok string) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/_login?token="+tok, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	return rec.Result().Cookies()
}

func get(e *echo.Echo, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoadViewer(t *testing.T) {
	e := newTestEcho()
	var seen domain.Viewer
	var forwarded string
	e.GET("/whoami", func(c echo.Context) error {
		seen = ViewerFrom(c)
		forwarded = apiclient.TokenFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	t.Run("guest", func(t *testing.T) {
		get(e, "/whoami", nil)
		assert.False(t, seen.LoggedIn())
		assert.Empty(t, forwarded)
	})

	t.Run("valid token", func(t *testing.T) {
		tok := token(t, jwt.MapClaims{"sub": "mai", "role": "ROLE_ADMIN", "id": 3, "exp": fixedNow.Add(time.Hour).Unix()})
		get(e, "/whoami", loginCookies(t, e, tok))
		assert.Equal(t, domain.Viewer{UserID: 3, Username: "mai", Role: domain.RoleAdmin}, seen)
		assert.Equal(t, tok, forwarded)
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		tok := token(t, jwt.MapClaims{"sub": "mai", "id": 3, "exp": fixedNow.Add(-time.Hour).Unix()})
		rec := get(e, "/whoami", loginCookies(t, e, tok))
		assert.False(t, seen.LoggedIn())
		assert.Empty(t, forwarded)
		assert.NotEmpty(t, rec.Result().Cookies(), "the cleared session is written back")
	})

	t.Run("malformed token is cleared", func(t *testing.T) {
		get(e, "/whoami", loginCookies(t, e, "garbage"))
		assert.False(t, seen.LoggedIn())
	})
}

func TestRequireLogin(t *testing.T) {
	e := newTestEcho()
	e.GET("/private", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, RequireLogin)

	rec := get(e, "/private", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	tok := token(t, jwt.MapClaims{"sub": "an", "id": 1})
	rec = get(e, "/private", loginCookies(t, e, tok))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	e := newTestEcho()
	e.GET("/admin", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, RequireRole(domain.RoleAdmin))

	rec := get(e, "/admin", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	student := token(t, jwt.MapClaims{"sub": "an", "id": 1, "role": "student"})
	rec = get(e, "/admin", loginCookies(t, e, student))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := token(t, jwt.MapClaims{"sub": "root", "id": 2, "role": "admin"})
	rec = get(e, "/admin", loginCookies(t, e, admin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHomeRedirect(t *testing.T) {
	e := newTestEcho()
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "home") }, HomeRedirect)

	rec := get(e, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	tok := token(t, jwt.MapClaims{"sub": "an", "id": 1, "exp": fixedNow.Add(time.Minute).Unix()})
	rec = get(e, "/", loginCookies(t, e, tok))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/courses", rec.Header().Get(echo.HeaderLocation))

	expired := token(t, jwt.MapClaims{"sub": "an", "id": 1, "exp": fixedNow.Add(-time.Minute).Unix()})
	rec = get(e, "/", loginCookies(t, e, expired))
	assert.Equal(t, http.StatusOK, rec.Code)

	noExpiry := token(t, jwt.MapClaims{"sub": "an", "id": 1})
	cookies := loginCookies(t, e, noExpiry)
	rec = get(e, "/", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "home", rec.Body.String())
}

func TestHomeRedirect_TokenWithoutExpiryIsCleared(t *testing.T) {
	e := newTestEcho()
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "home") }, HomeRedirect)
	e.GET("/private", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, RequireLogin)

	cookies := loginCookies(t, e, token(t, jwt.MapClaims{"sub": "an", "id": 1}))
	require.Equal(t, http.StatusOK, get(e, "/private", cookies).Code)

	rec := get(e, "/", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	if fresh := rec.Result().Cookies(); len(fresh) > 0 {
		cookies = fresh
	}

	rec = get(e, "/private", cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}
