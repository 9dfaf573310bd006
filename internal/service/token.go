// File: internal/service/token.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dracarys/internal/cache"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenPurpose 區分令牌用途，session 與 reset 互不通用
type TokenPurpose string

const (
	PurposeSession TokenPurpose = "session"
	PurposeReset   TokenPurpose = "reset"
)

// ErrInvalidToken 簽章錯誤、過期、格式錯誤或用途不符
var ErrInvalidToken = errors.New("invalid token")

// ErrResetTokenUsed 重設令牌已被使用過
var ErrResetTokenUsed = errors.New("reset token already used")

// CustomClaims 定義 JWT 負載內容，Subject 為使用者 Email
type CustomClaims struct {
	Purpose TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// 測試可覆寫的 seam 變數
var (
	timeNow         = time.Now
	newTokenID      = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
)

// TokenService 發行與驗證有時效的簽章令牌
// 密鑰由建構時注入，程式內不得出現預設密鑰字面值
type TokenService struct {
	secret     []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
}

// NewTokenService 建立 TokenService，secret 不可為空
func NewTokenService(secret string, sessionTTL, resetTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token service: empty secret")
	}
	return &TokenService{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
	}, nil
}

func (s *TokenService) issue(subject string, purpose TokenPurpose, ttl time.Duration) (string, error) {
	now := timeNow()
	claims := CustomClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        newTokenID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) verify(tokenString string, purpose TokenPurpose) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IssueSessionToken 為指定使用者 Email 發行登入令牌
func (s *TokenService) IssueSessionToken(email string) (string, error) {
	return s.issue(email, PurposeSession, s.sessionTTL)
}

// VerifySessionToken 驗證登入令牌並回傳其 Email，重設令牌在此無效
func (s *TokenService) VerifySessionToken(tokenString string) (string, error) {
	claims, err := s.verify(tokenString, PurposeSession)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IssueResetToken 為指定使用者 Email 發行密碼重設令牌
func (s *TokenService) IssueResetToken(email string) (string, error) {
	return s.issue(email, PurposeReset, s.resetTTL)
}

// VerifyResetToken 驗證密碼重設令牌並回傳其 Email，登入令牌在此無效
func (s *TokenService) VerifyResetToken(tokenString string) (string, error) {
	claims, err := s.verify(tokenString, PurposeReset)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ConsumeResetToken 驗證重設令牌並標記為已使用（單次有效）
// 已使用的令牌回傳 ErrResetTokenUsed；標記保留至令牌自然過期
func (s *TokenService) ConsumeResetToken(ctx context.Context, c cache.Cache, tokenString string) (string, error) {
	claims, err := s.verify(tokenString, PurposeReset)
	if err != nil {
		return "", err
	}

	ttl := claims.ExpiresAt.Time.Sub(timeNow())
	if ttl <= 0 {
		return "", ErrInvalidToken
	}

	key := "reset_used:" + claims.ID
	ok, err := c.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("ConsumeResetToken: %w", err)
	}
	if !ok {
		return "", ErrResetTokenUsed
	}
	return claims.Subject, nil
}
