// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"erpauth/internal/domain/entity"
	"erpauth/internal/domain/lockout"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")
)

// AccountRepository is the credential store.
// Username and email arguments are expected to be normalized (trimmed, lowercased) by the caller.
type AccountRepository interface {
	// Create persists a new account. It returns ErrDuplicateUsername or ErrDuplicateEmail
	// when a uniqueness constraint rejects the insert.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIdentifier retrieves the account whose username or email equals identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error)

	// FindByUsernameOrEmail retrieves an account matching either the username or the email.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Account, error)

	// RecordLoginFailure applies a failed attempt as one atomic mutation and returns the updated account.
	RecordLoginFailure(ctx context.Context, id uuid.UUID, failure lockout.Failure) (*entity.Account, error)

	// RecordLoginSuccess clears the failure counter and lock and stamps the last login time.
	RecordLoginSuccess(ctx context.Context, id uuid.UUID, now time.Time) (*entity.Account, error)

	// SetActive toggles the soft activation flag.
	SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (*entity.Account, error)

	// Stats counts accounts by state. Locks are evaluated against now.
	Stats(ctx context.Context, now time.Time) (*entity.AccountStats, error)

	// Ping checks connectivity to the underlying store.
	Ping(ctx context.Context) error
}
