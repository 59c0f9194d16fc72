package util

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"erpauth/internal/errors"
)

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	return v
}

// ValidationDetails flattens validator errors into "field: reason" pairs joined by "; ".
// Errors that are not validation errors are returned as their message.
func ValidationDetails(err error) string {
	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fe.Field()+": "+describe(fe))
	}

	return strings.Join(parts, "; ")
}

// MissingFields returns the JSON names of fields that failed a "required" rule.
func MissingFields(err error) []string {
	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}

	return missing
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "alphanumunicode", "alphanum":
		return "may only contain letters and digits"
	case "e164":
		return "must be an E.164 phone number"
	case "uuid":
		return "must be a UUID"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
