package authclient

import "time"

// Roles known to the service.
const (
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is the public account projection returned by the service.
type User struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FullName   string     `json:"fullName"`
	Department string     `json:"department"`
	Role       string     `json:"role"`
	IsActive   bool       `json:"isActive"`
	LastLogin  *time.Time `json:"lastLogin"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Profile is what the account owner sees about themselves.
type Profile struct {
	User
	PhoneNumber string    `json:"phoneNumber"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Session is the persisted result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// Expired reports whether the token lifetime has passed at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	Department  string `json:"department,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Health is the body of GET /api/health.
type Health struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
	Version     string    `json:"version"`
	Uptime      string    `json:"uptime"`
}

type envelope struct {
	Success           bool       `json:"success"`
	Message           string     `json:"message"`
	Field             string     `json:"field"`
	AttemptsRemaining *int       `json:"attemptsRemaining"`
	MinutesRemaining  *int       `json:"minutesRemaining"`
	Error             *errorInfo `json:"error"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

type userEnvelope struct {
	envelope
	User User `json:"user"`
}

type profileEnvelope struct {
	envelope
	User Profile `json:"user"`
}

type loginEnvelope struct {
	envelope
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}
