package authclient

import (
	"fmt"
	"net/http"

	"erpauth/internal/errors"
)

// ErrNotLoggedIn is returned by calls that need a stored session when there is none.
var ErrNotLoggedIn = errors.New("authclient: not logged in")

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode        int
	Code              string
	Message           string
	Details           string
	Field             string
	AttemptsRemaining *int
	MinutesRemaining  *int
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("authclient: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("authclient: %d: %s", e.StatusCode, e.Message)
}

// IsLocked reports whether the account is in a lockout cooldown.
func (e *APIError) IsLocked() bool {
	return e.StatusCode == http.StatusLocked
}

// IsUnauthorized reports a rejected credential or token.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func newAPIError(status int, env *envelope) *APIError {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}
	if env == nil {
		return apiErr
	}

	if env.Message != "" {
		apiErr.Message = env.Message
	}
	apiErr.Field = env.Field
	apiErr.AttemptsRemaining = env.AttemptsRemaining
	apiErr.MinutesRemaining = env.MinutesRemaining
	if env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Details = env.Error.Details
	}

	return apiErr
}
