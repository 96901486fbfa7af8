package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors the backend's JWT payload. The client holds no signing
// secret, so tokens are decoded without verification: an expired or
// malformed token just means the user has to log in again, and the backend
// rejects anything forged.
type Claims struct {
	UserID uint   `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the token's claims without verifying the signature.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the session's token carries an exp claim in the
// past. A missing token is expired; an opaque token that does not decode is
// not, since only the backend can judge it.
func (s *Session) Expired() bool {
	if s == nil || s.AuthToken == "" {
		return true
	}
	claims, err := ParseClaims(s.AuthToken)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
