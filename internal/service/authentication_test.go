package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dracarys/internal/database"
	"dracarys/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// fakeUserRow 模擬 users 資料列的 Scan
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Email
	*dest[2].(*string) = u.Name
	*dest[3].(*string) = u.PasswordHash
	*dest[4].(*model.UserRole) = u.Role
	*dest[5].(*bool) = u.IsActive
	*dest[6].(*time.Time) = u.CreatedAt
	*dest[7].(**time.Time) = u.UpdatedAt
	return nil
}

func userDB(u *model.User, scanErr error) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeUserRow{user: u, scanErr: scanErr}
		},
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	alice := &model.User{
		ID:           1,
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: hash,
		Role:         model.RoleClient,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	// 正確密碼
	user, err := Authenticate(ctx, userDB(alice, nil), "alice@example.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, alice.Email, user.Email)

	// 密碼錯誤與帳號不存在回傳完全相同的錯誤
	_, errWrongPw := Authenticate(ctx, userDB(alice, nil), "alice@example.com", "bad")
	require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)

	_, errNoUser := Authenticate(ctx, userDB(nil, pgx.ErrNoRows), "ghost@example.com", "pw1")
	require.ErrorIs(t, errNoUser, ErrInvalidCredentials)

	require.Equal(t, errWrongPw.Error(), errNoUser.Error())

	// 資料庫故障也不洩漏細節
	_, err = Authenticate(ctx, userDB(nil, errors.New("db down")), "alice@example.com", "pw1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
