// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record for a person who can sign in.
// Username and Email are stored trimmed and lowercased so that uniqueness is case-insensitive.
type Account struct {
	ID                 uuid.UUID  // Immutable identifier assigned at creation.
	Username           string     // Unique login name, 3-30 characters.
	Email              string     // Unique email address, also accepted as a login identifier.
	PasswordHash       string     // bcrypt hash of the current password. Never exposed.
	FullName           string     // Display name, 2-100 characters.
	Department         string     // Optional department name.
	PhoneNumber        string     // Optional contact number.
	Role               Role       // One of faculty, admin or student.
	IsActive           bool       // Deactivated accounts cannot authenticate.
	FailedAttemptCount int        // Consecutive failed logins in the current window.
	LockedUntil        *time.Time // When set and in the future, the account is locked.
	LastLoginAt        *time.Time // Time of the last successful login.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsLocked reports whether the account is locked at the given instant.
// A lock that has reached its expiry is treated as no lock at all.
func (a *Account) IsLocked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

// LockRemaining returns how long the lock still holds, or zero when unlocked.
func (a *Account) LockRemaining(now time.Time) time.Duration {
	if !a.IsLocked(now) {
		return 0
	}

	return a.LockedUntil.Sub(now)
}

// AccountStats summarises the account population.
type AccountStats struct {
	Total    int64
	Active   int64
	Inactive int64
	Faculty  int64 // Active faculty accounts.
	Admins   int64 // Active admin accounts.
	Students int64 // Active student accounts.
	Locked   int64 // Accounts whose lock has not expired yet.
}
