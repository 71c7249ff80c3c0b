package payments

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/module"
	"github.com/nfrund/learnhub/internal/registry"
)

// PaymentsModule serves the payment history and the gateway test panels.
type PaymentsModule struct {
	module.BaseModule
}

func New() *PaymentsModule {
	return &PaymentsModule{}
}

func (m *PaymentsModule) Name() string {
	return "payments"
}

// Register publishes the payment client; the admin dashboard counts
// payments with it.
func (m *PaymentsModule) Register(reg *registry.Registry) error {
	slog.Info("Registering PaymentsModule")
	api := registry.MustGet(reg, registry.APIClientKey)
	registry.Set(reg, registry.PaymentClientKey, apiclient.NewPaymentClient(api))
	return nil
}

func (m *PaymentsModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting PaymentsModule: Setting up routes...")
	client := registry.MustGet(reg, registry.PaymentClientKey)
	h := NewHandler(registry.MustGet(reg, registry.RendererKey), client, client, reg.Config().GetFilesBaseURL())
	h.Mount(g)
	return nil
}
