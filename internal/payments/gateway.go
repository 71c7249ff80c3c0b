package payments

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/nfrund/learnhub/internal/domain"
)

// GatewayAPI is the subset of the payment client behind the test panels.
type GatewayAPI interface {
	GatewayConfig(ctx context.Context) (domain.GatewayConfig, []byte, error)
	GatewayCreate(ctx context.Context, payment domain.GatewayTestPayment) (domain.PaymentResponse, []byte, error)
}

// SandboxCard is a card number accepted by the gateway sandbox.
type SandboxCard struct {
	Bank       string
	Number     string
	Holder     string
	IssueDate  string
	OTP        string
	Successful bool
}

// SandboxCards lists the sandbox cards shown next to the test panels.
func SandboxCards() []SandboxCard {
	return []SandboxCard{
		{Bank: "NCB", Number: "9704198526191432198", Holder: "NGUYEN VAN A", IssueDate: "07/15", OTP: "123456", Successful: true},
		{Bank: "Techcombank", Number: "9704061006060005047", Holder: "NGUYEN VAN A", IssueDate: "11/19", OTP: "123456", Successful: true},
	}
}

// DefaultTestPayment pre-fills the test form.
func DefaultTestPayment() domain.GatewayTestPayment {
	return domain.GatewayTestPayment{CourseID: 1, Amount: 500000, OrderInfo: "Test payment for course 1"}
}

// CheckTestPreconditions refuses a management test when the viewer is not
// authenticated or the gateway config is not valid.
func CheckTestPreconditions(authenticated bool, cfg domain.GatewayConfig) error {
	if !authenticated {
		return domain.ErrUnauthorized
	}
	if !cfg.IsValid {
		return domain.ErrGatewayNotReady
	}
	return nil
}

// MissingSettings names the gateway settings the backend does not have.
func MissingSettings(cfg domain.GatewayConfig) []string {
	var missing []string
	if !cfg.TmnCodeExists {
		missing = append(missing, "TMN code")
	}
	if !cfg.HashSecretExists {
		missing = append(missing, "hash secret")
	}
	if !cfg.PayURLExists {
		missing = append(missing, "payment URL")
	}
	if !cfg.ReturnURLExists {
		missing = append(missing, "return URL")
	}
	return missing
}

// PrettyJSON indents a raw response body for display. Bodies that are not
// JSON come back unchanged.
func PrettyJSON(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
