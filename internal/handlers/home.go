package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/rendering"
	"github.com/nfrund/learnhub/web/src/templates/layouts"
	"github.com/nfrund/learnhub/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	renderer  rendering.Renderer
	filesBase string
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(renderer rendering.Renderer, filesBase string) *HomeHandler {
	return &HomeHandler{renderer: renderer, filesBase: filesBase}
}

// HomeGet renders the guest landing page. Mount it behind
// middleware.HomeRedirect so signed-in users land on the catalog.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	page := layouts.PageFor(c, "Home", h.filesBase)
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(page, pages.Home()))
}
