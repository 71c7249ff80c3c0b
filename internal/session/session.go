// Package session keeps the API bearer token in the server-side session and
// decodes the claims the pages need from it.
package session

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// Name is the session that carries the token. Flashes use their own.
	Name     = "learnhub-session"
	tokenKey = "token"

	// MaxAge is the session lifetime in seconds.
	MaxAge = 86400 * 7
)

// Options are the cookie options for every session of the app.
func Options(secure bool) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   MaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Get returns the named session of the request. A cookie that no longer
// decodes, for example after the secret changed, yields a fresh session and
// a warning; saving it replaces the cookie.
func Get(name string, c echo.Context) (*sessions.Session, error) {
	sess, err := echosession.Get(name, c)
	if sess == nil {
		return nil, err
	}
	if err != nil {
		slog.WarnContext(c.Request().Context(), "Discarding undecodable session cookie", "session", name, "error", err)
	}
	return sess, nil
}

// SetToken stores the bearer token for the current visitor.
func SetToken(c echo.Context, token string) error {
	sess, err := Get(Name, c)
	if err != nil {
		return err
	}
	sess.Values[tokenKey] = token
	return sess.Save(c.Request(), c.Response())
}

// Token returns the stored token, or "" for guests.
func Token(c echo.Context) string {
	sess, err := Get(Name, c)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[tokenKey].(string)
	return token
}

// Clear forgets the token.
func Clear(c echo.Context) error {
	sess, err := Get(Name, c)
	if err != nil {
		return err
	}
	delete(sess.Values, tokenKey)
	return sess.Save(c.Request(), c.Response())
}
