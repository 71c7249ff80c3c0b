package payments

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/handlers"
	"github.com/nfrund/learnhub/internal/middleware"
	"github.com/nfrund/learnhub/internal/notify"
	"github.com/nfrund/learnhub/internal/payments"
	"github.com/nfrund/learnhub/internal/rendering"
	"github.com/nfrund/learnhub/internal/view"
	"github.com/nfrund/learnhub/web/src/templates/layouts"
	"github.com/nfrund/learnhub/web/src/templates/pages"
)

const historyPath = "/payments/history"

// Handler serves /payments.
type Handler struct {
	renderer  rendering.Renderer
	history   payments.HistoryAPI
	gateway   payments.GatewayAPI
	filesBase string
}

func NewHandler(renderer rendering.Renderer, history payments.HistoryAPI, gateway payments.GatewayAPI, filesBase string) *Handler {
	return &Handler{renderer: renderer, history: history, gateway: gateway, filesBase: filesBase}
}

// Mount registers the routes on the /payments group.
func (h *Handler) Mount(g *echo.Group) {
	g.GET("/history", h.History, middleware.RequireLogin)
	g.POST("/history/:tx/retry", h.Retry, middleware.RequireLogin)
	g.GET("/gateway", h.Gateway, middleware.RequireLogin)
	g.POST("/gateway/test", h.GatewayTest, middleware.RequireLogin)

	admin := middleware.RequireRole(domain.RoleAdmin)
	g.GET("/manage", h.Manage, admin)
	g.POST("/manage/test", h.ManageTest, admin)
}

// History lists the viewer's payments; admins see everyone's.
func (h *Handler) History(c echo.Context) error {
	ctx := c.Request().Context()
	v := middleware.ViewerFrom(c)

	list, err := payments.LoadHistory(ctx, h.history, v)
	if err != nil {
		middleware.FromContext(ctx).Warn("Failed to load payment history", "admin", v.IsAdmin(), "error", err)
		n := notify.FromError(err, "Could not load the payment history.")
		if n.RedirectToLogin {
			return middleware.ToLogin(c, n)
		}
		view.Flash(c, n)
	}
	return h.page(c, "Payment history", pages.PaymentHistory(pages.HistoryData{Viewer: v, Payments: list}))
}

// Retry completes a pending payment by replaying a successful callback.
func (h *Handler) Retry(c echo.Context) error {
	ctx := c.Request().Context()
	tx := c.Param("tx")

	list, err := payments.LoadHistory(ctx, h.history, middleware.ViewerFrom(c))
	if err != nil {
		return err
	}
	p, ok := payments.FindByTransaction(list, tx)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found.")
	}

	res, err := payments.RetryCallback(ctx, h.history, p)
	switch {
	case errors.Is(err, domain.ErrNotPending):
		view.SetFlashInfo(c, "Only pending payments can be completed.")
	case err != nil:
		middleware.FromContext(ctx).Warn("Payment callback failed", "transaction_id", tx, "error", err)
		n := notify.FromError(err, "Could not complete the payment.")
		if n.RedirectToLogin {
			return middleware.ToLogin(c, n)
		}
		view.Flash(c, n)
	case res.Success:
		view.SetFlashSuccess(c, messageOr(res.Message, "Payment completed."))
	default:
		view.SetFlashWarning(c, messageOr(res.Message, "The payment could not be completed."))
	}
	return rendering.Redirect(c, historyPath)
}

// Gateway is the self-service gateway test page.
func (h *Handler) Gateway(c echo.Context) error {
	d := h.gatewayData(c, false)
	return h.page(c, d.Title, pages.Gateway(d))
}

// GatewayTest posts a test payment and shows the raw response.
func (h *Handler) GatewayTest(c echo.Context) error {
	d := h.gatewayData(c, false)
	h.runTest(c, &d)
	return h.page(c, d.Title, pages.Gateway(d))
}

// Manage is the admin gateway management panel.
func (h *Handler) Manage(c echo.Context) error {
	d := h.gatewayData(c, true)
	return h.page(c, d.Title, pages.Gateway(d))
}

// ManageTest refuses to test an invalid configuration.
func (h *Handler) ManageTest(c echo.Context) error {
	d := h.gatewayData(c, true)

	var cfg domain.GatewayConfig
	if d.Config != nil {
		cfg = *d.Config
	}
	if err := payments.CheckTestPreconditions(middleware.ViewerFrom(c).LoggedIn(), cfg); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			d.ResultError = "You need to log in to run a test payment."
		default:
			d.ResultError = "The gateway configuration is not valid. Fix the missing settings before testing."
		}
		if err := c.Bind(&d.Form); err != nil {
			d.Form = payments.DefaultTestPayment()
		}
		return h.page(c, d.Title, pages.Gateway(d))
	}

	h.runTest(c, &d)
	return h.page(c, d.Title, pages.Gateway(d))
}

func (h *Handler) gatewayData(c echo.Context, management bool) pages.GatewayData {
	d := pages.GatewayData{
		Title:      "Payment gateway test",
		Action:     "/payments/gateway/test",
		Management: management,
		Form:       payments.DefaultTestPayment(),
		Cards:      payments.SandboxCards(),
	}
	if management {
		d.Title = "Payment gateway management"
		d.Action = "/payments/manage/test"
	}

	cfg, raw, err := h.gateway.GatewayConfig(c.Request().Context())
	d.ConfigRaw = payments.PrettyJSON(raw)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to load gateway config", "error", err)
		d.ConfigError = "Could not load the gateway configuration: " + describe(err)
		return d
	}
	d.Config = &cfg
	d.Missing = payments.MissingSettings(cfg)
	return d
}

func (h *Handler) runTest(c echo.Context, d *pages.GatewayData) {
	ctx := c.Request().Context()

	var form domain.GatewayTestPayment
	if err := c.Bind(&form); err != nil {
		d.ResultError = "The test form could not be read."
		return
	}
	d.Form = form
	if err := c.Validate(&form); err != nil {
		d.ResultError = strings.Join(handlers.ValidationMessages(err), " ")
		return
	}

	res, raw, err := h.gateway.GatewayCreate(ctx, form)
	d.ResultRaw = payments.PrettyJSON(raw)
	if err != nil {
		middleware.FromContext(ctx).Warn("Gateway test payment failed", "course_id", form.CourseID, "error", err)
		d.ResultError = "Test payment failed: " + describe(err)
		return
	}
	middleware.FromContext(ctx).Info("Gateway test payment created", "course_id", form.CourseID, "transaction_id", res.TransactionID)
	d.Result = &res
}

func (h *Handler) page(c echo.Context, title string, content cmp.Node) error {
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(layouts.PageFor(c, title, h.filesBase), content))
}

func describe(err error) string {
	if msg := apiclient.MessageOf(err); msg != "" {
		return msg
	}
	return err.Error()
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
