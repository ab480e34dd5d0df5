// Package session holds the bearer token issued by the InvoTrack API.
//
// Two Store implementations cover the two persistence models the product
// supports: MemoryStore keeps the session for the lifetime of the process
// (the session-scoped variant), FileStore survives restarts and carries the
// refresh token (the long-lived variant). The choice is configuration; every
// authenticated operation consults the store before issuing a request.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the credential state for the logged-in user. AccessToken is
// treated as opaque; RefreshToken may be empty when the server did not
// issue one.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Store reads and writes the current session.
//
// Contract:
//   - Set: replaces the stored session.
//   - Get: returns the stored session; ok is false when none is stored.
//   - Clear: removes the stored session. Clearing an empty store is not
//     an error.
type Store interface {
	Set(s Session) error
	Get() (s Session, ok bool)
	Clear() error
}

// ExpiresAt returns the access token's expiry when the token happens to be
// a JWT with an exp claim. The token stays semantically opaque: a parse
// failure or a missing claim yields the zero time, never an error. The
// signature is deliberately not verified; the client has no key and the
// server remains the authority.
func (s Session) ExpiresAt() time.Time {
	if s.AccessToken == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Expired reports whether the access token's known expiry has passed.
// Tokens with no known expiry are never considered expired client-side.
func (s Session) Expired(now time.Time) bool {
	exp := s.ExpiresAt()
	return !exp.IsZero() && now.After(exp)
}
