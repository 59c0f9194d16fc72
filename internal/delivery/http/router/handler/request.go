package handler

import (
	domainerrors "erpauth/internal/domain/errors"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// MissingFieldsError implements validator.MissingFieldsReporter.
func (LoginRequest) MissingFieldsError() *domainerrors.BaseError {
	return domainerrors.ErrMissingLoginFields
}

// VerifyTokenRequest is the body of POST /api/auth/verify-token.
type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// MissingFieldsError implements validator.MissingFieldsReporter.
func (VerifyTokenRequest) MissingFieldsError() *domainerrors.BaseError {
	return domainerrors.ErrMissingToken
}

// SetActiveRequest is the body of PATCH /api/admin/accounts/:id/active.
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
