package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/notify"
	"github.com/nfrund/learnhub/internal/rendering"
	"github.com/nfrund/learnhub/internal/session"
	"github.com/nfrund/learnhub/internal/view"
)

// ViewerContextKey is the echo context key of the current domain.Viewer.
const ViewerContextKey = "viewer"

// LoadViewer decodes the session token into a viewer and forwards the token
// to API calls made with the request context. Expired or unreadable tokens
// are cleared and the visitor continues as a guest.
func LoadViewer(now func() time.Time) echo.MiddlewareFunc {
	if now == nil {
		now = time.Now
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			viewer := domain.Viewer{}

			if token := session.Token(c); token != "" {
				claims, err := session.ParseClaims(token)
				switch {
				case err != nil:
					FromContext(c.Request().Context()).Warn("Discarding unreadable session token", "error", err)
					_ = session.Clear(c)
				case claims.Expired(now()):
					FromContext(c.Request().Context()).Info("Session token expired", "user", claims.Username)
					_ = session.Clear(c)
				default:
					viewer = claims.Viewer()
					ctx := apiclient.WithToken(c.Request().Context(), token)
					c.SetRequest(c.Request().WithContext(ctx))
				}
			}

			c.Set(ViewerContextKey, viewer)
			return next(c)
		}
	}
}

// ViewerFrom returns the viewer set by LoadViewer, or a guest.
func ViewerFrom(c echo.Context) domain.Viewer {
	v, _ := c.Get(ViewerContextKey).(domain.Viewer)
	return v
}

// RequireLogin sends guests to the login page.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ViewerFrom(c).LoggedIn() {
			view.SetFlashWarning(c, "You need to log in to continue.")
			return rendering.Redirect(c, "/login")
		}
		return next(c)
	}
}

// RequireRole lets through logged-in viewers with one of roles and answers
// 403 to everyone else logged in.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireLogin(func(c echo.Context) error {
			if !slices.Contains(roles, ViewerFrom(c).Role) {
				return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to access this page.")
			}
			return next(c)
		})
	}
}

// HomeRedirect sends logged-in viewers from the landing page to the catalog.
// A token without an expiry is cleared here and the guest page shown.
func HomeRedirect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ViewerFrom(c).LoggedIn() {
			return next(c)
		}
		if claims, err := session.ParseClaims(session.Token(c)); err != nil || claims.ExpiresAt.IsZero() {
			FromContext(c.Request().Context()).Info("Discarding session token without expiry")
			_ = session.Clear(c)
			c.Set(ViewerContextKey, domain.Viewer{})
			return next(c)
		}
		return c.Redirect(http.StatusSeeOther, "/courses")
	}
}

// ToLogin forgets a token the API rejected, flashes n and sends the visitor
// to the login page.
func ToLogin(c echo.Context, n notify.Notice) error {
	if err := session.Clear(c); err != nil {
		FromContext(c.Request().Context()).Warn("Failed to clear rejected session token", "error", err)
	}
	c.Set(ViewerContextKey, domain.Viewer{})
	view.Flash(c, n)
	return rendering.Redirect(c, "/login")
}
