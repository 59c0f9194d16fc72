// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"erpauth/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Role is left empty by the public endpoint and defaults to faculty; the seeder may set it.
type RegisterInput struct {
	Username    string      `json:"username" validate:"required,min=3,max=30"`
	Email       string      `json:"email" validate:"required,email,max=255"`
	Password    string      `json:"password" validate:"required,max=72"`
	FullName    string      `json:"fullName" validate:"required,min=2,max=100"`
	Department  string      `json:"department" validate:"max=100"`
	PhoneNumber string      `json:"phoneNumber" validate:"max=20"`
	Role        entity.Role `json:"role"`
}

// LoginInput defines the data required to log in. Identifier is a username or an email.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Account   *entity.Account
}

// AuthUsecase defines the registration, login and token operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.Account, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// VerifyToken resolves a bearer token to the active account it was issued for.
	VerifyToken(ctx context.Context, token string) (*entity.Account, error)
	// Profile returns the current state of an authenticated account.
	Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
