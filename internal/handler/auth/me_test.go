package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dracarys/internal/middleware"
	"dracarys/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestMeHandler(t *testing.T) {
	e := echo.New()

	// middleware did not run
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	require.NoError(t, MeHandler()(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// user present in context
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	ctx = e.NewContext(req, rec)
	ctx.Set(middleware.ContextUserKey, &model.User{
		ID:       7,
		Email:    "me@b.com",
		Name:     "Me",
		Role:     model.RoleSuperUser,
		IsActive: true,
	})
	require.NoError(t, MeHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"email":"me@b.com"`)
	require.Contains(t, rec.Body.String(), `"role":"super_user"`)
	require.NotContains(t, rec.Body.String(), "password")
}
