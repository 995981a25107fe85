package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pos-pricing-engine/internal/pkg/errs"
)

// State of the register session lifecycle.
type State string

const (
	StateNone    State = "NONE"
	StateActive  State = "ACTIVE"
	StateExpired State = "EXPIRED"
)

// RegisterSession binds a terminal to a store for a bounded time.
// Exactly one is valid per (store, terminal) from the client's view.
type RegisterSession struct {
	RegisterID string    `json:"register_id"`
	StoreID    string    `json:"store_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ExpiredAt is the polling expiry check run at session-critical
// checkpoints; there is no scheduled timer.
func (s RegisterSession) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

var ErrNoExpiryClaim = errs.New("token carries no expiry claim")

// ExpiryFromToken reads the exp claim out of an access token without
// verifying the signature. Verification belongs to the issuing
// service; the client only needs the expiry contract.
func ExpiryFromToken(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, errs.Wrap(err, "parse session token")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, errs.Wrap(err, "read expiry claim")
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}
	return exp.Time, nil
}
