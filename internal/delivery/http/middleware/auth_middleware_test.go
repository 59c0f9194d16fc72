package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	deliverycontext "erpauth/internal/delivery/context"
	"erpauth/internal/domain/entity"
	domainerrors "erpauth/internal/domain/errors"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{header: "bearer   abc", want: "abc", ok: true},
		{header: "BEARER abc", want: "abc", ok: true},
		{header: "Bearer ", ok: false},
		{header: "Basic dXNlcjpwYXNz", ok: false},
		{header: "abc.def.ghi", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(nil)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	handler := m.RequireRole(entity.RoleAdmin)(next)

	newContext := func() echo.Context {
		return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	}

	c := newContext()
	assert.ErrorIs(t, handler(c), domainerrors.ErrAuthorizationMissing)

	c = newContext()
	deliverycontext.SetAccount(c, &entity.Account{Role: entity.RoleFaculty})
	assert.ErrorIs(t, handler(c), domainerrors.ErrForbidden)

	c = newContext()
	deliverycontext.SetAccount(c, &entity.Account{Role: entity.RoleAdmin})
	assert.NoError(t, handler(c))
}
