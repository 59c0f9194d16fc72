package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ACCOUNT_LOCKED"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope every endpoint answers with.
// The optional fields carry the machine-readable parts of specific failures.
type Response struct {
	Success           bool       `json:"success"`
	Code              int        `json:"code"`
	Message           string     `json:"message"`
	Field             string     `json:"field,omitempty"`             // DuplicateError
	AttemptsRemaining *int       `json:"attemptsRemaining,omitempty"` // InvalidCredentialsError
	MinutesRemaining  *int       `json:"minutesRemaining,omitempty"`  // AccountLockedError
	Error             *ErrorInfo `json:"error,omitempty"`
}

// NewResponse renders an AppError into the response envelope.
// Internal failures keep their details out of the payload.
func NewResponse(appErr AppError) Response {
	resp := Response{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Error: &ErrorInfo{
			Code: appErr.ErrorCode(),
		},
	}

	if appErr.HTTPCode() < 500 {
		resp.Error.Details = appErr.Details()
	}

	switch e := appErr.(type) {
	case *DuplicateError:
		resp.Field = e.Field()
	case *InvalidCredentialsError:
		if n := e.AttemptsRemaining(); n > 0 {
			resp.AttemptsRemaining = &n
		}
	case *AccountLockedError:
		n := e.MinutesRemaining()
		resp.MinutesRemaining = &n
	}

	return resp
}
