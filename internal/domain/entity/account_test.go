package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccount_IsLocked(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name        string
		lockedUntil *time.Time
		want        bool
	}{
		{name: "never locked", lockedUntil: nil, want: false},
		{name: "lock in the future", lockedUntil: &future, want: true},
		{name: "lock expired", lockedUntil: &past, want: false},
		{name: "lock expires exactly now", lockedUntil: &now, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{LockedUntil: tt.lockedUntil}
			assert.Equal(t, tt.want, acc.IsLocked(now))
		})
	}
}

func TestAccount_LockRemaining(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	until := now.Add(90 * time.Second)

	assert.Equal(t, 90*time.Second, (&Account{LockedUntil: &until}).LockRemaining(now))
	assert.Zero(t, (&Account{}).LockRemaining(now))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("")
	assert.True(t, ok)
	assert.Equal(t, RoleFaculty, role)

	role, ok = ParseRole(" Admin ")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = ParseRole("registrar")
	assert.False(t, ok)

	assert.True(t, AllRoles().Contains(RoleStudent))
}
