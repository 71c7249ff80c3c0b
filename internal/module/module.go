package module

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/registry"
)

// Module is a feature area of the site: its services and its routes.
type Module interface {
	// Name is the module identifier, also its mount path under the root.
	Name() string

	// Register publishes the module's services to the registry. All modules
	// register before any boots.
	Register(reg *registry.Registry) error

	// Boot mounts the routes on the module's group and starts background work.
	Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error

	// Shutdown stops background work.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op Register, Boot and Shutdown.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
