package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "erpauth/internal/delivery/context"
	"erpauth/internal/delivery/http/response"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/errors"
)

// ErrorMiddleware renders every error returned by a handler or middleware.
type ErrorMiddleware struct {
	logger *slog.Logger
	routes func() []string
}

// NewErrorMiddleware creates a new error handling middleware. routes lists the endpoints
// reported to clients that hit an unknown path.
func NewErrorMiddleware(logger *slog.Logger, routes func() []string) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		routes: routes,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		m.write(c, response.Error(c, appErr))

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		m.write(c, m.renderHTTPError(c, httpErr))

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.write(c, response.Error(c, domainerrors.ErrInternalError))
}

func (m *ErrorMiddleware) renderHTTPError(c echo.Context, httpErr *echo.HTTPError) error {
	switch httpErr.Code {
	case http.StatusNotFound:
		return response.NotFound(c, m.availableRoutes())
	case http.StatusMethodNotAllowed:
		return response.Error(c, domainerrors.NewBaseError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", ""))
	case http.StatusRequestEntityTooLarge:
		return response.Error(c, domainerrors.NewBaseError(http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", ""))
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return response.BindingError(c, fmt.Sprint(httpErr.Message))
	}

	if httpErr.Code >= http.StatusInternalServerError {
		return response.Error(c, domainerrors.ErrInternalError)
	}

	return response.Error(c, domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", http.StatusText(httpErr.Code), fmt.Sprint(httpErr.Message)))
}

func (m *ErrorMiddleware) availableRoutes() []string {
	if m.routes == nil {
		return []string{}
	}

	return m.routes()
}

func (m *ErrorMiddleware) write(c echo.Context, err error) {
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
