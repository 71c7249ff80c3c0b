package admin

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/dashboard"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/middleware"
	"github.com/nfrund/learnhub/internal/rendering"
	"github.com/nfrund/learnhub/web/src/templates/layouts"
	"github.com/nfrund/learnhub/web/src/templates/pages"
)

// Handler serves /admin.
type Handler struct {
	renderer  rendering.Renderer
	dashboard *dashboard.Service
	filesBase string
}

func NewHandler(renderer rendering.Renderer, svc *dashboard.Service, filesBase string) *Handler {
	return &Handler{renderer: renderer, dashboard: svc, filesBase: filesBase}
}

func (h *Handler) Mount(g *echo.Group) {
	g.GET("/dashboard", h.Dashboard, middleware.RequireRole(domain.RoleAdmin))
}

// Dashboard renders the counters and the activity feed. Partial fetch
// failures are shown as zeros, never as an error page.
func (h *Handler) Dashboard(c echo.Context) error {
	d := h.dashboard.Load(c.Request().Context())
	now := time.Now()
	if h.dashboard.Now != nil {
		now = h.dashboard.Now()
	}
	content := pages.Dashboard(pages.DashboardData{Dashboard: d, Now: now})
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(layouts.PageFor(c, "Dashboard", h.filesBase), content))
}
