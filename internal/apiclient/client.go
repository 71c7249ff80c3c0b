// Package apiclient is the boundary to the backend REST API. Each resource
// has a thin client built on Client, which attaches the caller's bearer
// token and turns non-2xx responses into *APIError values.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// HTTPDoer defines the http.Client subset the clients need.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

type tokenKey struct{}

// WithToken returns a context that carries the bearer token for outgoing
// API calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token stored by WithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Paths that must never carry a bearer token.
var anonymousPaths = []string{"/users/login", "/users/register"}

// Client executes JSON requests against the API base URL.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  *slog.Logger
}

// New builds a client for baseURL. A nil doer uses a client with a ten
// second timeout.
func New(baseURL string, doer HTTPDoer) *Client {
	if doer == nil {
		doer = NewHTTPClient(10 * time.Second)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		logger:  slog.Default().With("component", "apiclient"),
	}
}

// NewHTTPClient returns *http.Client with timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func needsAuth(path string) bool {
	for _, p := range anonymousPaths {
		if strings.Contains(path, p) {
			return false
		}
	}
	return true
}

// Raw executes a request and returns status and body without interpreting
// either. in, when non-nil, is sent as JSON.
func (c *Client) Raw(ctx context.Context, method, path string, in any) (int, []byte, error) {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" && needsAuth(path) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", "method", method, "path", path, "error", err)
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.logger.Debug("api request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	return resp.StatusCode, body, nil
}

// Do executes a request and decodes a 2xx JSON body into out (which may be
// nil). Any other status is returned as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	_, err := c.do(ctx, method, path, in, out)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) ([]byte, error) {
	status, body, err := c.Raw(ctx, method, path, in)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return body, newAPIError(status, body)
	}
	if out != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return body, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return body, nil
}

// get is a small helper for list endpoints.
func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}
