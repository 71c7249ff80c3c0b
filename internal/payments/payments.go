// Package payments covers the payment history, the gateway test panels and
// the display helpers shared by both.
package payments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nfrund/learnhub/internal/domain"
)

// HistoryAPI is the subset of the payment client used for history and retry.
type HistoryAPI interface {
	History(ctx context.Context) ([]domain.PaymentHistory, error)
	AdminHistory(ctx context.Context) ([]domain.PaymentHistory, error)
	SimulateCallback(ctx context.Context, transactionID, status string) (domain.CallbackResult, error)
}

// LoadHistory returns all payments for admins and the viewer's own for
// everyone else.
func LoadHistory(ctx context.Context, api HistoryAPI, v domain.Viewer) ([]domain.PaymentHistory, error) {
	if v.IsAdmin() {
		return api.AdminHistory(ctx)
	}
	return api.History(ctx)
}

// FindByTransaction looks up a payment in a loaded history.
func FindByTransaction(history []domain.PaymentHistory, transactionID string) (domain.PaymentHistory, bool) {
	for _, p := range history {
		if p.TransactionID == transactionID {
			return p, true
		}
	}
	return domain.PaymentHistory{}, false
}

// RetryCallback asks the backend to replay a successful gateway callback for
// a pending payment. Any other status returns domain.ErrNotPending without
// calling the API.
func RetryCallback(ctx context.Context, api HistoryAPI, p domain.PaymentHistory) (domain.CallbackResult, error) {
	if p.Status != domain.PaymentPending {
		return domain.CallbackResult{}, domain.ErrNotPending
	}
	res, err := api.SimulateCallback(ctx, p.TransactionID, "success")
	if err != nil {
		return res, fmt.Errorf("simulate callback for %s: %w", p.TransactionID, err)
	}
	slog.InfoContext(ctx, "Payment callback simulated", "transaction_id", p.TransactionID, "success", res.Success)
	return res, nil
}

// MethodName is the display name of a payment method code.
func MethodName(method string) string {
	switch strings.ToLower(method) {
	case "vnpay":
		return "VNPay"
	case "momo":
		return "MoMo"
	case "zalopay":
		return "ZaloPay"
	case "bank_transfer", "banking":
		return "Bank transfer"
	case "credit_card", "card":
		return "Credit card"
	case "":
		return "Unknown"
	}
	return method
}

// StatusName is the label of a payment status.
func StatusName(status domain.PaymentStatus) string {
	switch status {
	case domain.PaymentPending:
		return "Pending"
	case domain.PaymentCompleted:
		return "Completed"
	case domain.PaymentFailed:
		return "Failed"
	case domain.PaymentCancelled:
		return "Cancelled"
	}
	return string(status)
}

// StatusClass is the CSS class of a status badge.
func StatusClass(status domain.PaymentStatus) string {
	switch status {
	case domain.PaymentPending, domain.PaymentCompleted, domain.PaymentFailed, domain.PaymentCancelled:
		return "status-" + string(status)
	}
	return "status-unknown"
}
