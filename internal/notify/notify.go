// Package notify decides what the user is told when something goes wrong
// talking to the API.
package notify

import (
	"github.com/nfrund/learnhub/internal/apiclient"
)

// Kind is the severity of a user notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// Notice is a message for the user plus an optional navigation.
type Notice struct {
	Kind            Kind
	Message         string
	RedirectToLogin bool
}

// FromError maps an API failure to a notice: 401 sends the user to the login
// page, 403 is a permission message and anything else gets generic.
func FromError(err error, generic string) Notice {
	switch {
	case apiclient.IsUnauthorized(err):
		return Notice{Kind: Warning, Message: "You need to log in to continue.", RedirectToLogin: true}
	case apiclient.IsForbidden(err):
		return Notice{Kind: Error, Message: "You do not have permission to access this page."}
	}
	return Notice{Kind: Error, Message: generic}
}
