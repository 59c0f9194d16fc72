// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "erpauth/internal/delivery/context"
	"erpauth/internal/delivery/http/response"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/errors"
	"erpauth/internal/usecase"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles POST /api/auth/register. Field rules are enforced by the usecase.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	// The public endpoint always registers faculty.
	input.Role = ""

	account, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Registration successful! Please login to continue.", response.NewAccountView(account))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.LoginResponse{
		Response:  response.OK(http.StatusOK, "Login successful"),
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      response.NewAccountView(output.Account),
	})
}

// VerifyToken handles POST /api/auth/verify-token.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req VerifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.VerifyToken(c.Request().Context(), req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Token is valid", response.NewAccountView(account))
}

// Profile handles GET /api/auth/profile. The account is placed on the context by AuthMiddleware.
func (h *AuthHandler) Profile(c echo.Context) error {
	current, ok := deliverycontext.GetAccount(c)
	if !ok {
		return domainerrors.ErrAuthorizationMissing
	}

	account, err := h.uc.Profile(c.Request().Context(), current.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.NewProfileView(account))
}
