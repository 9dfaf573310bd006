package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dracarys/internal/database"
	"dracarys/internal/model"
	"dracarys/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// helper to build echo context with a JSON body
func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type fakeUserRow struct {
	u   model.User
	err error
}

func (r fakeUserRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.u.ID
	*dest[1].(*string) = r.u.Email
	*dest[2].(*string) = r.u.Name
	*dest[3].(*string) = r.u.PasswordHash
	*dest[4].(*model.UserRole) = r.u.Role
	*dest[5].(*bool) = r.u.IsActive
	*dest[6].(*time.Time) = r.u.CreatedAt
	*dest[7].(**time.Time) = r.u.UpdatedAt
	return nil
}

func userDB(u model.User, scanErr error) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeUserRow{u: u, err: scanErr}
		},
	}
}

func newTestTokens(t *testing.T) *service.TokenService {
	t.Helper()
	tokens, err := service.NewTokenService("test-secret", 30*time.Minute, 15*time.Minute)
	require.NoError(t, err)
	return tokens
}

func TestLoginHandler(t *testing.T) {
	tokens := newTestTokens(t)

	// bind error
	e := echo.New()
	ctx, rec := newJSONCtx(e, "{not json")
	h := LoginHandler(&database.FakeDB{}, tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newJSONCtx(e, `{"email":"a@b.com","password":"pw"}`)
	h = LoginHandler(&database.FakeDB{}, tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown email and wrong password must be indistinguishable
	e = echo.New()
	e.Validator = okValidator{}
	ctx, recUnknown := newJSONCtx(e, `{"email":"ghost@b.com","password":"pw"}`)
	h = LoginHandler(userDB(model.User{}, pgx.ErrNoRows), tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, recUnknown.Code)

	hash, err := service.HashPassword("correct-password")
	require.NoError(t, err)
	alice := model.User{ID: 1, Email: "alice@b.com", Name: "Alice", PasswordHash: hash, Role: model.RoleClient, IsActive: true}

	ctx, recWrong := newJSONCtx(e, `{"email":"alice@b.com","password":"wrong"}`)
	h = LoginHandler(userDB(alice, nil), tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, recWrong.Code)
	require.Equal(t, recUnknown.Body.String(), recWrong.Body.String())

	// success
	ctx, rec = newJSONCtx(e, `{"email":"Alice@b.com","password":"correct-password"}`)
	h = LoginHandler(userDB(alice, nil), tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "access_token")
	require.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	require.NotContains(t, rec.Body.String(), hash)
}
