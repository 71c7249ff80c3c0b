package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/handlers"
	"github.com/nfrund/learnhub/internal/middleware"
)

// RegisterRoutes sets up the routes that live outside the modules.
func (s *Server) RegisterRoutes() {
	filesBase := s.Cfg.GetFilesBaseURL()
	homeHandler := handlers.NewHomeHandler(s.renderer, filesBase)
	authHandler := handlers.NewAuthHandler(apiclient.NewUserClient(s.api), s.renderer, filesBase)
	rateLimiter := middleware.RateLimiter(middleware.DefaultRateLimit)

	s.E.GET("/", homeHandler.HomeGet, middleware.HomeRedirect)

	s.E.GET("/register", authHandler.RegisterGet)
	s.E.POST("/register", authHandler.RegisterPost, rateLimiter)

	s.E.GET("/login", authHandler.LoginGet)
	s.E.POST("/login", authHandler.LoginPost, rateLimiter)
	s.E.POST("/logout", authHandler.Logout)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
