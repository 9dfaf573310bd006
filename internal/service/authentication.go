// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"dracarys/internal/database"
	"dracarys/internal/model"
	"dracarys/internal/repository"
)

// ErrInvalidCredentials 登入失敗，不區分帳號不存在與密碼錯誤
var ErrInvalidCredentials = errors.New("incorrect email or password")

// dummyHash 供帳號不存在時做等價比對，避免由時間差洩漏帳號存在與否
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Authenticate 以 Email 與明文密碼驗證使用者
// 帳號不存在與密碼錯誤一律回傳 ErrInvalidCredentials
func Authenticate(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	user, err := repository.GetUserByEmail(ctx, db, email)
	if err != nil {
		// 帳號不存在時仍執行一次比對
		_ = ComparePassword(dummyHash, password)
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
