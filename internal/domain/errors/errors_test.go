package errors

import (
	"net/http"
	"testing"

	"erpauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	err := errors.Wrap(NewValidationError("username: too short"), "register")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrInvalidToken))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "username: too short", appErr.Details())
}

func TestInvalidCredentialsError_Message(t *testing.T) {
	assert.Equal(t, "Invalid credentials. 3 attempts remaining.", NewInvalidCredentialsError(3).Message())
	assert.Equal(t, "Invalid credentials", NewInvalidCredentialsError(0).Message())
	assert.Equal(t, "Invalid credentials", NewInvalidCredentialsError(-2).Message())
	assert.Equal(t, http.StatusUnauthorized, NewInvalidCredentialsError(1).HTTPCode())
}

func TestAccountLockedError(t *testing.T) {
	err := NewAccountLockedError(120)

	assert.Equal(t, http.StatusLocked, err.HTTPCode())
	assert.Contains(t, err.Message(), "Please try again in 120 minutes.")
}

func TestDuplicateError_Message(t *testing.T) {
	assert.Equal(t, "Email already registered", NewDuplicateError("email").Message())
	assert.Equal(t, "Username already taken", NewDuplicateError("username").Message())
	assert.Equal(t, "phone already exists", NewDuplicateError("phone").Message())
}

func TestNewResponse(t *testing.T) {
	t.Run("credentials carry attempts", func(t *testing.T) {
		resp := NewResponse(NewInvalidCredentialsError(2))
		require.NotNil(t, resp.AttemptsRemaining)
		assert.Equal(t, 2, *resp.AttemptsRemaining)
		assert.False(t, resp.Success)
	})

	t.Run("lock carries minutes", func(t *testing.T) {
		resp := NewResponse(NewAccountLockedError(7))
		require.NotNil(t, resp.MinutesRemaining)
		assert.Equal(t, 7, *resp.MinutesRemaining)
		assert.Equal(t, "ACCOUNT_LOCKED", resp.Error.Code)
	})

	t.Run("duplicate names field", func(t *testing.T) {
		resp := NewResponse(NewDuplicateError("username"))
		assert.Equal(t, "username", resp.Field)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("internal details are hidden", func(t *testing.T) {
		resp := NewResponse(NewDatabaseExecuteError(errors.New("pq: connection refused"), "failed to create account"))
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Empty(t, resp.Error.Details)
	})
}
