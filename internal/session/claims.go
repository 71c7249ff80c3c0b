package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nfrund/learnhub/internal/domain"
)

// ErrMalformedToken is returned for tokens whose payload cannot be read.
var ErrMalformedToken = errors.New("malformed token")

// Claims are the parts of the token payload the front-end uses.
type Claims struct {
	UserID    int64
	Username  string
	Role      domain.Role
	ExpiresAt time.Time
}

// ParseClaims decodes the payload without checking the signature; the
// backend verifies the token on every call. A token without a role is a
// student token.
func ParseClaims(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	c := Claims{Role: domain.RoleStudent}
	if role, ok := mc["role"].(string); ok && role != "" {
		c.Role = domain.ParseRole(role)
	}
	if sub, err := mc.GetSubject(); err == nil {
		c.Username = sub
	}
	c.UserID = int64Claim(mc, "id")
	if c.UserID == 0 {
		c.UserID = int64Claim(mc, "userId")
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

// Expired reports whether the token has an expiry at or before now. Tokens
// without one never expire here.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Viewer is the identity used for page decisions.
func (c Claims) Viewer() domain.Viewer {
	return domain.Viewer{UserID: c.UserID, Username: c.Username, Role: c.Role}
}

func int64Claim(mc jwt.MapClaims, key string) int64 {
	switch v := mc[key].(type) {
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}
