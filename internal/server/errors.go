package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/middleware"
	"github.com/nfrund/learnhub/internal/notify"
	"github.com/nfrund/learnhub/internal/rendering"
	"github.com/nfrund/learnhub/web/src/templates/layouts"
	"github.com/nfrund/learnhub/web/src/templates/pages"
)

// setupErrorHandling installs the central error handler. Upstream 401s send
// the visitor to the login page; everything else renders the error page.
func setupErrorHandling(e *echo.Echo, renderer rendering.Renderer, filesBase string) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if apiclient.IsUnauthorized(err) {
			n := notify.Notice{Kind: notify.Warning, Message: "Your session has expired. Please log in again."}
			if rerr := middleware.ToLogin(c, n); rerr != nil {
				slog.Error("Failed to redirect to login", "error", rerr)
			}
			return
		}

		code := http.StatusInternalServerError
		message := ""
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		case apiclient.IsForbidden(err):
			code = http.StatusForbidden
			message = "You do not have permission to access this page."
		default:
			slog.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		page := layouts.PageFor(c, http.StatusText(code), filesBase)
		if rerr := renderer.RenderPage(c, code, layouts.Base(page, pages.Error(code, message))); rerr != nil {
			slog.Error("Failed to render error page", "error", rerr)
			_ = c.String(code, http.StatusText(code))
		}
	}
}
