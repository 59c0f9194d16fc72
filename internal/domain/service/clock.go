package service

import "time"

// Clock returns the current time. Usecases and the token service take it as a dependency
// so that lockout and expiry can be exercised in tests.
type Clock func() time.Time

// SystemClock returns the wall clock in UTC.
func SystemClock() Clock {
	return func() time.Time {
		return time.Now().UTC()
	}
}
