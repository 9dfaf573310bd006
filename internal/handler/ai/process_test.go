package ai

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dracarys/internal/middleware"
	"dracarys/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func newCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProcessHandler(t *testing.T) {
	// bind error
	e := echo.New()
	ctx, rec := newCtx(e, "{not json")
	require.NoError(t, ProcessHandler()(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// no user in context
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCtx(e, `{"input_text":"hello"}`)
	require.NoError(t, ProcessHandler()(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// echoes the input back with the caller's id
	ctx, rec = newCtx(e, `{"input_text":"hello"}`)
	ctx.Set(middleware.ContextUserKey, &model.User{ID: 4, Email: "u@b.com", Role: model.RoleClient, IsActive: true})
	require.NoError(t, ProcessHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"response":"AI processed: hello"`)
	require.Contains(t, rec.Body.String(), `"input":"hello"`)
	require.Contains(t, rec.Body.String(), `"user_id":4`)
}
