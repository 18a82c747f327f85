package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the client can read out of a JWT session token for
// display. The token is opaque as far as authorization goes; verification
// belongs to the server, so nothing here is trusted for access decisions.
type Claims struct {
	Role      string
	ExpiresAt time.Time // zero if the token carries no expiry
}

// Claims parses the stored token as an unverified JWT. Tokens that are not
// JWTs (the wire format is opaque) yield zero Claims and ok=false.
func (s *Store) Claims() (Claims, bool) {
	token := s.Token()
	if token == "" {
		return Claims{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}

	var c Claims
	if role, ok := mc["role"].(string); ok {
		c.Role = role
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, true
}
