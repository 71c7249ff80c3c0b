package domain

import "errors"

// Sentinel errors for the domain layer. Upstream API failures are reported
// as *apiclient.APIError values that also match these with errors.Is.
var (
	ErrNotFound        = errors.New("requested resource not found")
	ErrUnauthorized    = errors.New("authentication required")
	ErrForbidden       = errors.New("permission denied")
	ErrBadRequest      = errors.New("request rejected")
	ErrGatewayNotReady = errors.New("payment gateway configuration is not valid")
	ErrNotPending      = errors.New("payment is not pending")
)
