// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleFaculty is the default role assigned at registration.
	RoleFaculty Role = "faculty"
	// RoleAdmin can inspect and deactivate accounts.
	RoleAdmin Role = "admin"
	// RoleStudent indicates a student account.
	RoleStudent Role = "student"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleFaculty, RoleAdmin, RoleStudent:
		return true
	default:
		return false
	}
}

// ParseRole normalizes s and reports whether it names a known role.
// An empty string resolves to RoleFaculty.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleFaculty, true
	}

	role := Role(s)

	return role, role.IsValid()
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// AllRoles lists every valid role.
func AllRoles() Roles {
	return Roles{RoleFaculty, RoleAdmin, RoleStudent}
}
