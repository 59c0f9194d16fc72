package gormstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"erpauth/internal/domain/repository"
)

// Index names declared on model.AccountModel. PostgreSQL reports the index name,
// SQLite reports table.column; both contain the column name.
const (
	columnUsername = "username"
	columnEmail    = "email"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") || // PostgreSQL 23505
		strings.Contains(errMsg, "unique constraint") // SQLite
}

// duplicateAccountError maps a unique violation to the repository error for the offending column.
// Email is checked first, matching the registration pre-check order.
func duplicateAccountError(err error) error {
	if !isUniqueConstraintViolation(err) {
		return nil
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, columnEmail):
		return repository.ErrDuplicateEmail
	case strings.Contains(errMsg, columnUsername):
		return repository.ErrDuplicateUsername
	default:
		// A translated gorm.ErrDuplicatedKey carries no column; username is the narrower guess.
		return repository.ErrDuplicateUsername
	}
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
