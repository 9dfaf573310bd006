package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"dracarys/internal/cache"
	"dracarys/internal/database"
	"dracarys/internal/model"
	"dracarys/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func freshResetCache() *cache.FakeCache {
	return &cache.FakeCache{
		SetNXFn: func(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(true, nil)
		},
	}
}

func TestResetPasswordHandler(t *testing.T) {
	tokens := newTestTokens(t)

	// bind error
	e := echo.New()
	ctx, rec := newJSONCtx(e, "{not json")
	h := ResetPasswordHandler(&database.FakeDB{}, freshResetCache(), tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// garbage token
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, `{"token":"garbage","new_password":"newpass123"}`)
	h = ResetPasswordHandler(&database.FakeDB{}, freshResetCache(), tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// session token is not accepted for password reset
	sessionTok, err := tokens.IssueSessionToken("alice@b.com")
	require.NoError(t, err)
	ctx, rec = newJSONCtx(e, `{"token":"`+sessionTok+`","new_password":"newpass123"}`)
	h = ResetPasswordHandler(&database.FakeDB{}, freshResetCache(), tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// already used token
	resetTok, err := tokens.IssueResetToken("alice@b.com")
	require.NoError(t, err)
	usedCache := &cache.FakeCache{
		SetNXFn: func(context.Context, string, any, time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(false, nil)
		},
	}
	ctx, rec = newJSONCtx(e, `{"token":"`+resetTok+`","new_password":"newpass123"}`)
	h = ResetPasswordHandler(&database.FakeDB{}, usedCache, tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid or expired")

	// success updates the stored hash with a bcrypt of the new password
	resetTok, err = tokens.IssueResetToken("alice@b.com")
	require.NoError(t, err)
	alice := model.User{ID: 9, Email: "alice@b.com", Name: "Alice", IsActive: true}
	var updateArgs []any
	db := &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeUserRow{u: alice}
		},
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "password_hash")
			updateArgs = args
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	ctx, rec = newJSONCtx(e, `{"token":"`+resetTok+`","new_password":"newpass123"}`)
	h = ResetPasswordHandler(db, freshResetCache(), tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, updateArgs, 2)
	newHash, ok := updateArgs[0].(string)
	require.True(t, ok)
	require.NoError(t, service.ComparePassword(newHash, "newpass123"))
	require.Equal(t, 9, updateArgs[1])
}
