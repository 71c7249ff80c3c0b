package apiclient

import (
	"context"
	"net/http"

	"github.com/nfrund/learnhub/internal/domain"
)

// PaymentClient covers purchase, history and gateway diagnostics.
type PaymentClient struct {
	c *Client
}

func NewPaymentClient(c *Client) *PaymentClient {
	return &PaymentClient{c: c}
}

// History lists the calling user's payments.
func (pc *PaymentClient) History(ctx context.Context) ([]domain.PaymentHistory, error) {
	return get[[]domain.PaymentHistory](ctx, pc.c, "/payments/history")
}

// AdminHistory lists every payment. Admin only.
func (pc *PaymentClient) AdminHistory(ctx context.Context) ([]domain.PaymentHistory, error) {
	return get[[]domain.PaymentHistory](ctx, pc.c, "/payments/admin/history")
}

// Create starts a purchase and returns the gateway redirect.
func (pc *PaymentClient) Create(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResponse, error) {
	var out domain.PaymentResponse
	err := pc.c.Do(ctx, http.MethodPost, "/payments/create", req, &out)
	return out, err
}

// SimulateCallback asks the backend to act as if the gateway had called back
// for the transaction.
func (pc *PaymentClient) SimulateCallback(ctx context.Context, transactionID, status string) (domain.CallbackResult, error) {
	var out domain.CallbackResult
	body := map[string]string{"transactionId": transactionID, "status": status}
	err := pc.c.Do(ctx, http.MethodPost, "/payments/callback/simulate", body, &out)
	return out, err
}

// GatewayConfig returns the decoded gateway configuration and the raw body
// for display.
func (pc *PaymentClient) GatewayConfig(ctx context.Context) (domain.GatewayConfig, []byte, error) {
	var out domain.GatewayConfig
	raw, err := pc.c.do(ctx, http.MethodGet, "/payments/gateway/config", nil, &out)
	return out, raw, err
}

// GatewayCreate posts a test payment to the gateway. The raw body is returned
// on both success and API error so the panels can show it.
func (pc *PaymentClient) GatewayCreate(ctx context.Context, payment domain.GatewayTestPayment) (domain.PaymentResponse, []byte, error) {
	var out domain.PaymentResponse
	raw, err := pc.c.do(ctx, http.MethodPost, "/payments/gateway/create", payment, &out)
	return out, raw, err
}
