// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/util"
)

// MissingFieldsReporter is implemented by request bodies that answer missing required
// fields with a dedicated error instead of the generic validation failure.
type MissingFieldsReporter interface {
	MissingFieldsError() *domainerrors.BaseError
}

// Validator validates bound request bodies.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *Validator {
	return &Validator{validate: util.NewValidator()}
}

// Validate implements echo.Validator. Failures are returned as domain errors.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	if reporter, ok := i.(MissingFieldsReporter); ok {
		if missing := util.MissingFields(err); len(missing) > 0 {
			return reporter.MissingFieldsError().WithDetails("missing: " + strings.Join(missing, ", "))
		}
	}

	return domainerrors.NewValidationError(util.ValidationDetails(err))
}
