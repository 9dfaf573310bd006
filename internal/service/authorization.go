// File: internal/service/authorization.go
package service

import (
	"context"
	"errors"

	"dracarys/internal/database"
	"dracarys/internal/model"
	"dracarys/internal/repository"
)

// 授權管線錯誤，邊界層據此對應 401 / 403
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInactiveUser = errors.New("inactive user")
	ErrForbidden    = errors.New("not enough permissions")
)

// ResolveCurrentUser 驗證登入令牌並查出對應使用者
// 令牌無效或使用者不存在一律回傳 ErrUnauthorized
func ResolveCurrentUser(ctx context.Context, db database.DB, tokens *TokenService, tokenString string) (*model.User, error) {
	email, err := tokens.VerifySessionToken(tokenString)
	if err != nil {
		return nil, ErrUnauthorized
	}
	user, err := repository.GetUserByEmail(ctx, db, email)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// RequireActive 帳號停用時回傳 ErrInactiveUser
func RequireActive(user *model.User) error {
	if !user.IsActive {
		return ErrInactiveUser
	}
	return nil
}

// RequireRole 角色不符時回傳 ErrForbidden
func RequireRole(user *model.User, role model.UserRole) error {
	if user.Role != role {
		return ErrForbidden
	}
	return nil
}
