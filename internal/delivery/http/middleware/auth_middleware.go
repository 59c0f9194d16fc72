// Package middleware contains the echo middlewares specific to the HTTP API.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "erpauth/internal/delivery/context"
	"erpauth/internal/domain/entity"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/usecase"
)

const bearerPrefix = "bearer "

// AuthMiddleware provides middleware for bearer token authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer token to an active account and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrAuthorizationMissing
		}

		account, err := m.authUC.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetAccount(c, account)

		return next(c)
	}
}

// RequireRole checks the authenticated account's role. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := deliverycontext.GetAccount(c)
			if !ok {
				return domainerrors.ErrAuthorizationMissing
			}

			if !allowed.Contains(account.Role) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + joinRoles(allowed))
			}

			return next(c)
		}
	}
}

// bearerToken extracts the credential from an Authorization header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

func joinRoles(roles entity.Roles) string {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.String()
	}

	return strings.Join(names, " or ")
}
