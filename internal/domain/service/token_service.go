package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is what a verified bearer token asserts.
type Claims struct {
	AccountID uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token bound to the account.
	Issue(accountID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Verify checks signature and expiry. It fails with ErrInvalidToken or ErrTokenExpired.
	Verify(token string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
