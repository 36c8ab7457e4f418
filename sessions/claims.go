package sessions

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/gastometro/storage"
)

// TokenClaims is what can be read from the stored access token without verifying it.
// It is informational only: the session stays authenticated whatever it says.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time // zero when absent
	ExpiresAt time.Time // zero when absent
}

// Expired reports whether the token carries an expiry that is before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// Claims decodes the stored access token. Opaque (non JWT) tokens return an error.
func (s *Store) Claims() (*TokenClaims, error) {
	raw, err := s.storage.Get(storage.KeyAccessToken)
	if err != nil {
		return nil, err
	}
	return ParseClaims(raw)
}

// ParseClaims reads the registered claims of a JWT without checking its signature.
func ParseClaims(rawToken string) (*TokenClaims, error) {
	claims := jwtlib.RegisteredClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(rawToken, &claims); err != nil {
		return nil, fmt.Errorf("[ParseClaims] %w", err)
	}

	tc := &TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		tc.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		tc.ExpiresAt = claims.ExpiresAt.Time
	}
	return tc, nil
}
