package admin

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/dashboard"
	"github.com/nfrund/learnhub/internal/module"
	"github.com/nfrund/learnhub/internal/registry"
)

// AdminModule serves the admin dashboard. It uses the course and payment
// clients registered by the other modules.
type AdminModule struct {
	module.BaseModule
}

func New() *AdminModule {
	return &AdminModule{}
}

func (m *AdminModule) Name() string {
	return "admin"
}

func (m *AdminModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting AdminModule: Setting up routes...")
	courses := registry.MustGet(reg, registry.CourseClientKey)

	svc := &dashboard.Service{
		Users:      apiclient.NewUserClient(registry.MustGet(reg, registry.APIClientKey)),
		Courses:    courses,
		Payments:   registry.MustGet(reg, registry.PaymentClientKey),
		Categories: courses,
	}
	if log, ok := registry.Get(reg, registry.ActivityLogKey); ok {
		svc.Activity = log
	}

	NewHandler(registry.MustGet(reg, registry.RendererKey), svc, reg.Config().GetFilesBaseURL()).Mount(g)
	return nil
}
