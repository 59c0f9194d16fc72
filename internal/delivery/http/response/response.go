// Package response renders the JSON envelopes returned by the HTTP delivery.
package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domainerrors "erpauth/internal/domain/errors"
)

// Response is the part of the envelope shared by every success payload.
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`              // HTTP status code
	Message string `json:"message,omitempty"` // User-friendly message
}

// UserResponse carries a single account projection.
type UserResponse struct {
	Response
	User any `json:"user"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Response
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *AccountView `json:"user"`
}

// StatsResponse carries the account counters.
type StatsResponse struct {
	Response
	Stats *StatsView `json:"stats"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Response
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
	Version     string    `json:"version"`
	Uptime      string    `json:"uptime"`
}

// NotFoundResponse lists the routes a client may have meant.
type NotFoundResponse struct {
	Response
	AvailableRoutes []string `json:"availableRoutes"`
}

// OK builds the success part of an envelope.
func OK(statusCode int, message string) Response {
	return Response{
		Success: true,
		Code:    statusCode,
		Message: message,
	}
}

// Success writes a success envelope holding one account projection.
func Success(c echo.Context, statusCode int, message string, user any) error {
	return c.JSON(statusCode, UserResponse{
		Response: OK(statusCode, message),
		User:     user,
	})
}

// Error writes an error envelope for appErr.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), domainerrors.NewResponse(appErr))
}

// BindingError 400 error for a request body that could not be decoded.
func BindingError(c echo.Context, details string) error {
	return Error(c, domainerrors.ErrValidationFailed.WithDetails(details))
}

// NotFound 404 error with the list of known routes.
func NotFound(c echo.Context, routes []string) error {
	return c.JSON(http.StatusNotFound, NotFoundResponse{
		Response: Response{
			Success: false,
			Code:    http.StatusNotFound,
			Message: "Route not found",
		},
		AvailableRoutes: routes,
	})
}
