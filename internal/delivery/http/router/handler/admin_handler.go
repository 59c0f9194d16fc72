package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"erpauth/internal/delivery/http/response"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/errors"
	"erpauth/internal/usecase"
)

// AdminHandler serves the admin-only account endpoints.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.StatsResponse{
		Response: response.OK(http.StatusOK, ""),
		Stats:    response.NewStatsView(stats),
	})
}

// SetActive handles PATCH /api/admin/accounts/:id/active.
func (h *AdminHandler) SetActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NewValidationError("id: must be a UUID")
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid account status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.SetActive(c.Request().Context(), id, *req.IsActive)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Account deactivated"
	if account.IsActive {
		message = "Account activated"
	}

	return response.Success(c, http.StatusOK, message, response.NewAccountView(account))
}
