package courses

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/module"
	"github.com/nfrund/learnhub/internal/registry"
)

// CoursesModule serves the catalog, enrollment, purchase and review modal.
type CoursesModule struct {
	module.BaseModule
}

func New() *CoursesModule {
	return &CoursesModule{}
}

func (m *CoursesModule) Name() string {
	return "courses"
}

// Register publishes the course client for other modules.
func (m *CoursesModule) Register(reg *registry.Registry) error {
	slog.Info("Registering CoursesModule")
	api := registry.MustGet(reg, registry.APIClientKey)
	registry.Set(reg, registry.CourseClientKey, apiclient.NewCourseClient(api))
	return nil
}

func (m *CoursesModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting CoursesModule: Setting up routes...")
	api := registry.MustGet(reg, registry.APIClientKey)

	h := NewHandler(Dependencies{
		Renderer:    registry.MustGet(reg, registry.RendererKey),
		Courses:     registry.MustGet(reg, registry.CourseClientKey),
		Enrollments: apiclient.NewEnrollmentClient(api),
		Payments:    apiclient.NewPaymentClient(api),
		ReviewAPI:   apiclient.NewReviewClient(api),
		Publisher:   registry.MustGet(reg, registry.PublisherKey),
		FilesBase:   reg.Config().GetFilesBaseURL(),
	})

	h.Mount(g)
	return nil
}
