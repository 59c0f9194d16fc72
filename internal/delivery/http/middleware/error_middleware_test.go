package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/errors"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), func() []string {
		return []string{"GET /api/health"}
	})
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

	m.HandleHTTPError(err, c)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	code, body := renderError(t, errors.Wrap(domainerrors.NewAccountLockedError(17), "login"))

	assert.Equal(t, http.StatusLocked, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(17), body["minutesRemaining"])
	assert.Equal(t, "ACCOUNT_LOCKED", body["error"].(map[string]any)["code"])
}

func TestErrorMiddleware_HidesInternalDetails(t *testing.T) {
	code, body := renderError(t, errors.New("pq: connection refused to 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, body["error"].(map[string]any), "details")

	code, body = renderError(t, domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "insert accounts"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body["error"].(map[string]any)["code"])
	assert.NotContains(t, body["error"].(map[string]any), "details")
}

func TestErrorMiddleware_NotFound(t *testing.T) {
	code, body := renderError(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, []any{"GET /api/health"}, body["availableRoutes"])
}
