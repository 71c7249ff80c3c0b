package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/middleware"
	"github.com/nfrund/learnhub/internal/rendering"
	"github.com/nfrund/learnhub/internal/session"
	"github.com/nfrund/learnhub/internal/view"
	"github.com/nfrund/learnhub/web/src/templates/layouts"
	"github.com/nfrund/learnhub/web/src/templates/pages"
)

// Authenticator is the part of the user client the auth pages use.
type Authenticator interface {
	Login(ctx context.Context, creds apiclient.Credentials) (string, error)
	Register(ctx context.Context, reg apiclient.Registration) error
}

// AuthHandler proxies login and sign-up to the backend and keeps the
// returned token in the session.
type AuthHandler struct {
	users     Authenticator
	renderer  rendering.Renderer
	filesBase string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users Authenticator, renderer rendering.Renderer, filesBase string) *AuthHandler {
	return &AuthHandler{users: users, renderer: renderer, filesBase: filesBase}
}

// LoginGet renders the login page, pre-filled after a failed attempt.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	// Read the kept value before the page consumes the other flashes.
	data := pages.LoginData{Username: view.FormValue(c, "username")}
	return h.render(c, "Log in", pages.Login(data))
}

// LoginPost exchanges the credentials for a token.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var creds apiclient.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "The login form could not be read.")
	}
	if err := c.Validate(&creds); err != nil {
		return h.loginFailed(c, creds.Username, ValidationMessages(err)...)
	}

	ctx := c.Request().Context()
	token, err := h.users.Login(ctx, creds)
	if err != nil {
		middleware.FromContext(ctx).Warn("Failed login attempt", "username", creds.Username, "error", err)
		switch apiclient.StatusOf(err) {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
			return h.loginFailed(c, creds.Username, "Invalid username or password.")
		}
		return h.loginFailed(c, creds.Username, "Could not log in right now. Please try again later.")
	}

	if err := session.SetToken(c, token); err != nil {
		return err
	}

	name := creds.Username
	if claims, err := session.ParseClaims(token); err == nil && claims.Username != "" {
		name = claims.Username
	}
	view.SetFlashSuccess(c, "Welcome back, "+name+"!")
	return rendering.Redirect(c, "/courses")
}

func (h *AuthHandler) loginFailed(c echo.Context, username string, messages ...string) error {
	for _, m := range messages {
		view.SetFlashError(c, m)
	}
	view.KeepFormValue(c, "username", username)
	return rendering.Redirect(c, "/login")
}

// RegisterGet renders the sign-up page, pre-filled after a failed attempt.
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	data := pages.RegisterData{
		Username: view.FormValue(c, "username"),
		Email:    view.FormValue(c, "email"),
		FullName: view.FormValue(c, "full_name"),
		Role:     view.FormValue(c, "role"),
	}
	return h.render(c, "Sign up", pages.Register(data))
}

// RegisterPost creates the account. The user logs in afterwards.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var reg apiclient.Registration
	if err := c.Bind(&reg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "The sign-up form could not be read.")
	}
	if reg.Role == "" {
		reg.Role = "student"
	}
	if err := c.Validate(&reg); err != nil {
		return h.registerFailed(c, reg, ValidationMessages(err)...)
	}

	ctx := c.Request().Context()
	if err := h.users.Register(ctx, reg); err != nil {
		middleware.FromContext(ctx).Warn("Registration failed", "username", reg.Username, "error", err)
		if msg := apiclient.MessageOf(err); msg != "" && apiclient.StatusOf(err) == http.StatusBadRequest {
			return h.registerFailed(c, reg, msg)
		}
		return h.registerFailed(c, reg, "Could not create your account.")
	}

	middleware.FromContext(ctx).Info("Account created", "username", reg.Username, "role", reg.Role)
	view.SetFlashSuccess(c, "Account created successfully! You can log in now.")
	view.KeepFormValue(c, "username", reg.Username)
	return rendering.Redirect(c, "/login")
}

func (h *AuthHandler) registerFailed(c echo.Context, reg apiclient.Registration, messages ...string) error {
	for _, m := range messages {
		view.SetFlashError(c, m)
	}
	view.KeepFormValue(c, "username", reg.Username)
	view.KeepFormValue(c, "email", reg.Email)
	view.KeepFormValue(c, "full_name", reg.FullName)
	view.KeepFormValue(c, "role", reg.Role)
	return rendering.Redirect(c, "/register")
}

// Logout forgets the token.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := session.Clear(c); err != nil {
		return err
	}
	view.SetFlashSuccess(c, "You have been logged out.")
	return rendering.Redirect(c, "/")
}

func (h *AuthHandler) render(c echo.Context, title string, content cmp.Node) error {
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(layouts.PageFor(c, title, h.filesBase), content))
}
