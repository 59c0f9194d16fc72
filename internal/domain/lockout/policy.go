// Package lockout implements the per-account lockout rules applied after repeated failed logins.
//
// The state lives on the account record so that it survives restarts. Stores apply
// Failure as a single atomic mutation; Apply is the reference transition they encode.
package lockout

import (
	"math"
	"time"

	"erpauth/internal/domain/entity"
)

const (
	// DefaultThreshold is the number of consecutive failures that triggers a lock.
	DefaultThreshold = 5
	// DefaultCooldown is how long a lock lasts.
	DefaultCooldown = 2 * time.Hour
)

// Policy holds the lockout parameters.
type Policy struct {
	Threshold int
	Cooldown  time.Duration
}

// NewPolicy returns a Policy, substituting defaults for non-positive values.
func NewPolicy(threshold int, cooldown time.Duration) Policy {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	return Policy{Threshold: threshold, Cooldown: cooldown}
}

// Failure builds the failed-attempt transition to apply at now.
func (p Policy) Failure(now time.Time) Failure {
	return Failure{
		Now:       now,
		Threshold: p.Threshold,
		LockUntil: now.Add(p.Cooldown),
	}
}

// RemainingMinutes returns the lock time left on acc in whole minutes, rounded up.
func (p Policy) RemainingMinutes(acc *entity.Account, now time.Time) int {
	return CeilMinutes(acc.LockRemaining(now))
}

// AttemptsRemaining returns how many more failures are tolerated before a lock, never below zero.
func (p Policy) AttemptsRemaining(failedAttempts int) int {
	return max(p.Threshold-failedAttempts, 0)
}

// Failure describes one failed login attempt.
type Failure struct {
	Now       time.Time // Instant of the attempt.
	Threshold int       // Counter value at which the account locks.
	LockUntil time.Time // Lock expiry to set if this attempt reaches the threshold.
}

// Apply returns the counter and lock after this failure, given the state before it.
//
// An expired lock is cleared and the counter restarts at 1. A lock still in force is
// left untouched while the counter keeps growing. Otherwise reaching the threshold sets
// a fresh lock.
func (f Failure) Apply(count int, lockedUntil *time.Time) (int, *time.Time) {
	if lockedUntil != nil && lockedUntil.After(f.Now) {
		return count + 1, lockedUntil
	}

	next := count + 1
	if lockedUntil != nil {
		next = 1
	}

	if next >= f.Threshold {
		until := f.LockUntil

		return next, &until
	}

	return next, nil
}

// CeilMinutes converts d to minutes, rounding any partial minute up.
func CeilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(math.Ceil(d.Minutes()))
}
