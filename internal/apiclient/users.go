package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/nfrund/learnhub/internal/domain"
)

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Registration is the sign-up payload.
type Registration struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	FullName string `json:"fullName" form:"full_name" validate:"max=100"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=student instructor"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// ErrNoToken is returned when login succeeds but the body carries no token.
var ErrNoToken = errors.New("login response carried no token")

// UserClient covers authentication and the admin user listing.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

// Login exchanges credentials for a bearer token.
func (uc *UserClient) Login(ctx context.Context, creds Credentials) (string, error) {
	var out loginResponse
	if err := uc.c.Do(ctx, http.MethodPost, "/users/login", creds, &out); err != nil {
		return "", err
	}
	if out.Token != "" {
		return out.Token, nil
	}
	if out.AccessToken != "" {
		return out.AccessToken, nil
	}
	return "", ErrNoToken
}

// Register creates an account. It does not sign the user in.
func (uc *UserClient) Register(ctx context.Context, reg Registration) error {
	return uc.c.Do(ctx, http.MethodPost, "/users/register", reg, nil)
}

// List returns every user. Admin only.
func (uc *UserClient) List(ctx context.Context) ([]domain.User, error) {
	return get[[]domain.User](ctx, uc.c, "/users")
}
