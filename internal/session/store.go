package session

import (
	"context"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/nfrund/learnhub/internal/config"
)

// NewStore builds the session store selected by configuration. The returned
// close function releases the Redis client, if any.
func NewStore(ctx context.Context, cfg config.Provider) (sessions.Store, func() error, error) {
	secure := strings.HasPrefix(cfg.GetAppBaseURL(), "https://")
	secret := []byte(cfg.GetSessionSecret())

	if cfg.GetSessionStore() != "redis" {
		store := sessions.NewCookieStore(secret)
		store.Options = Options(secure)
		return store, func() error { return nil }, nil
	}

	client, err := NewRedisClient(ctx, cfg.GetRedisAddr(), cfg.GetRedisPassword())
	if err != nil {
		return nil, nil, err
	}
	return NewRedisStore(client, Options(secure), secret), client.Close, nil
}
