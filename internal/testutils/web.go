package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/middleware"
	"github.com/nfrund/learnhub/internal/session"
)

// NewEcho returns an echo instance with sessions and the viewer middleware,
// plus a POST /_login route that stores the "token" form value in the
// session and a GET /_whoami route answering the viewer's username.
func NewEcho() *echo.Echo {
	e := echo.New()
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(TestSessionSecret))))
	e.Use(middleware.LoadViewer(nil))
	e.POST("/_login", func(c echo.Context) error {
		if err := session.SetToken(c, c.FormValue("token")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/_whoami", func(c echo.Context) error {
		return c.String(http.StatusOK, middleware.ViewerFrom(c).Username)
	})
	return e
}

// Token builds a JWT carrying the claims the front-end reads. The signature
// is never checked.
func Token(t *testing.T, role domain.Role, userID int64, username string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  username,
		"id":   userID,
		"role": "ROLE_" + strings.ToUpper(string(role)),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// Login stores token in a session and returns its cookies.
func Login(t *testing.T, e *echo.Echo, token string) []*http.Cookie {
	t.Helper()
	rec := Do(e, http.MethodPost, "/_login", url.Values{"token": {token}}, nil, false)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("login helper answered %d", rec.Code)
	}
	return rec.Result().Cookies()
}

// LoginAs is Login with a fresh token for the given identity.
func LoginAs(t *testing.T, e *echo.Echo, role domain.Role, userID int64, username string) []*http.Cookie {
	t.Helper()
	return Login(t, e, Token(t, role, userID, username))
}

// Do performs a request. form is sent url-encoded when not nil; htmx adds
// the HX-Request header.
func Do(e *echo.Echo, method, path string, form url.Values, cookies []*http.Cookie, htmx bool) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// Follow returns the cookies of rec merged over cookies, so flashes set by
// a redirecting handler are visible to the next request.
func Follow(cookies []*http.Cookie, rec *httptest.ResponseRecorder) []*http.Cookie {
	byName := make(map[string]*http.Cookie)
	var order []string
	for _, c := range append(append([]*http.Cookie(nil), cookies...), rec.Result().Cookies()...) {
		if _, seen := byName[c.Name]; !seen {
			order = append(order, c.Name)
		}
		byName[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}
