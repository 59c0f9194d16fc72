package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"erpauth/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business error code.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !stderrors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
}

// ErrConfigInvalid marks configuration problems detected at startup.
// It is never rendered to clients; the process refuses to start instead.
var ErrConfigInvalid = stderrors.New("invalid configuration")

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation Error",
		"",
	)

	ErrMissingRegistrationFields = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please provide all required fields: username, email, password, and fullName",
		"",
	)

	ErrMissingLoginFields = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please provide username/email and password",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Token is required",
		"",
	)

	ErrEmailDomainNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_DOMAIN_NOT_ALLOWED",
		"Please use a valid university email address",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Role must be either faculty, admin, or student",
		"",
	)

	// Authentication-related errors
	ErrAccountInactive = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_INACTIVE",
		"Account is deactivated. Please contact administrator.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Token-related errors
	ErrAuthorizationMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Access denied. No token provided.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired",
		"",
	)

	ErrAccountUnavailable = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_UNAVAILABLE",
		"Invalid token or user not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"Service unavailable",
		"",
	)
)

// NewValidationError returns a validation failure listing the offending fields.
func NewValidationError(details string) error {
	return ErrValidationFailed.WithDetails(details)
}

// DuplicateError reports a registration that collides with an existing account.
type DuplicateError struct {
	field string
}

// NewDuplicateError creates a DuplicateError for the colliding field ("email" or "username").
func NewDuplicateError(field string) *DuplicateError {
	return &DuplicateError{field: field}
}

// Error implements the error interface
func (e *DuplicateError) Error() string {
	return e.Message()
}

// Field returns the name of the colliding field.
func (e *DuplicateError) Field() string {
	return e.field
}

// HTTPCode returns the HTTP status code
func (e *DuplicateError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *DuplicateError) ErrorCode() string {
	return "DUPLICATE_ACCOUNT"
}

// Message returns the user-friendly error message
func (e *DuplicateError) Message() string {
	switch e.field {
	case "email":
		return "Email already registered"
	case "username":
		return "Username already taken"
	default:
		return fmt.Sprintf("%s already exists", e.field)
	}
}

// Details returns detailed error information
func (e *DuplicateError) Details() string {
	return e.field
}

// InvalidCredentialsError is the generic login failure. It never says which part was wrong.
type InvalidCredentialsError struct {
	attemptsRemaining int
}

// NewInvalidCredentialsError creates a login failure. attemptsRemaining is only reported when positive.
func NewInvalidCredentialsError(attemptsRemaining int) *InvalidCredentialsError {
	return &InvalidCredentialsError{attemptsRemaining: max(attemptsRemaining, 0)}
}

// Error implements the error interface
func (e *InvalidCredentialsError) Error() string {
	return e.Message()
}

// AttemptsRemaining returns how many failures are left before the account locks, or 0 if unknown.
func (e *InvalidCredentialsError) AttemptsRemaining() int {
	return e.attemptsRemaining
}

// HTTPCode returns the HTTP status code
func (e *InvalidCredentialsError) HTTPCode() int {
	return http.StatusUnauthorized
}

// ErrorCode returns the business error code
func (e *InvalidCredentialsError) ErrorCode() string {
	return "INVALID_CREDENTIALS"
}

// Message returns the user-friendly error message
func (e *InvalidCredentialsError) Message() string {
	if e.attemptsRemaining > 0 {
		return fmt.Sprintf("Invalid credentials. %d attempts remaining.", e.attemptsRemaining)
	}

	return "Invalid credentials"
}

// Details returns detailed error information
func (e *InvalidCredentialsError) Details() string {
	return ""
}

// AccountLockedError is returned while a lockout is in force.
type AccountLockedError struct {
	minutesRemaining int
}

// NewAccountLockedError creates a lockout failure carrying the ceiling-rounded minutes left.
func NewAccountLockedError(minutesRemaining int) *AccountLockedError {
	return &AccountLockedError{minutesRemaining: minutesRemaining}
}

// Error implements the error interface
func (e *AccountLockedError) Error() string {
	return e.Message()
}

// MinutesRemaining returns the remaining cooldown in whole minutes, rounded up.
func (e *AccountLockedError) MinutesRemaining() int {
	return e.minutesRemaining
}

// HTTPCode returns the HTTP status code
func (e *AccountLockedError) HTTPCode() int {
	return http.StatusLocked
}

// ErrorCode returns the business error code
func (e *AccountLockedError) ErrorCode() string {
	return "ACCOUNT_LOCKED"
}

// Message returns the user-friendly error message
func (e *AccountLockedError) Message() string {
	return fmt.Sprintf("Account temporarily locked due to too many login attempts. Please try again in %d minutes.", e.minutesRemaining)
}

// Details returns detailed error information
func (e *AccountLockedError) Details() string {
	return ""
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "INTERNAL_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
