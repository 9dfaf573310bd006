package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dracarys/internal/cache"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func restoreTokenGlobals() {
	timeNow = time.Now
	newTokenID = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
}

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	s, err := NewTokenService("test-secret", 30*time.Minute, 15*time.Minute)
	require.NoError(t, err)
	return s
}

func TestNewTokenService(t *testing.T) {
	_, err := NewTokenService("", time.Minute, time.Minute)
	require.Error(t, err)

	s, err := NewTokenService("s", time.Minute, time.Minute)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestSessionTokenRoundtrip(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	s := newTestTokenService(t)

	tok, err := s.IssueSessionToken("alice@example.com")
	require.NoError(t, err)

	email, err := s.VerifySessionToken(tok)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", email)
}

func TestSessionTokenExpiry(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	s := newTestTokenService(t)

	// 發行時間撥回兩倍 TTL，令牌立即過期
	timeNow = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err := s.IssueSessionToken("alice@example.com")
	require.NoError(t, err)

	timeNow = time.Now
	_, err = s.VerifySessionToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)

	// TTL 為零或負值時，發出的令牌一律視為過期
	timeNow = func() time.Time { return time.Now().Add(-time.Second) }
	for _, ttl := range []time.Duration{0, -time.Minute} {
		s, err := NewTokenService("test-secret", ttl, ttl)
		require.NoError(t, err)
		tok, err := s.IssueSessionToken("alice@example.com")
		require.NoError(t, err)
		timeNow = time.Now
		_, err = s.VerifySessionToken(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
		timeNow = func() time.Time { return time.Now().Add(-time.Second) }
	}
}

func TestTokenPurposeIsolation(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	s := newTestTokenService(t)

	session, err := s.IssueSessionToken("alice@example.com")
	require.NoError(t, err)
	reset, err := s.IssueResetToken("alice@example.com")
	require.NoError(t, err)

	// 重設令牌不能當登入令牌用，反之亦然
	_, err = s.VerifySessionToken(reset)
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = s.VerifyResetToken(session)
	require.ErrorIs(t, err, ErrInvalidToken)

	email, err := s.VerifyResetToken(reset)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", email)
}

func TestVerifySessionTokenInvalid(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	s := newTestTokenService(t)

	// 空字串與亂碼
	_, err := s.VerifySessionToken("")
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = s.VerifySessionToken("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	// 其他密鑰簽出的令牌
	other, err := NewTokenService("other-secret", time.Minute, time.Minute)
	require.NoError(t, err)
	tok, err := other.IssueSessionToken("alice@example.com")
	require.NoError(t, err)
	_, err = s.VerifySessionToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)

	// 竄改負載
	tok, err = s.IssueSessionToken("alice@example.com")
	require.NoError(t, err)
	tampered := tok[:len(tok)-4] + "abcd"
	_, err = s.VerifySessionToken(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)

	// alg=none 不被接受
	tokNone, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.VerifySessionToken(tokNone)
	require.ErrorIs(t, err, ErrInvalidToken)

	// 解析回傳非預期 claims 型別
	parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = s.VerifySessionToken("whatever")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestConsumeResetToken(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	s := newTestTokenService(t)
	ctx := context.Background()

	tok, err := s.IssueResetToken("alice@example.com")
	require.NoError(t, err)

	// 無效令牌直接失敗，不碰快取
	c := &cache.FakeCache{}
	_, err = s.ConsumeResetToken(ctx, c, "bogus")
	require.ErrorIs(t, err, ErrInvalidToken)

	// 首次使用成功並寫入標記
	var storedKey string
	var storedTTL time.Duration
	c.SetNXFn = func(_ context.Context, key string, _ any, ttl time.Duration) *redis.BoolCmd {
		storedKey = key
		storedTTL = ttl
		return redis.NewBoolResult(true, nil)
	}
	email, err := s.ConsumeResetToken(ctx, c, tok)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", email)
	require.Contains(t, storedKey, "reset_used:")
	require.Greater(t, storedTTL, time.Duration(0))

	// 已使用過
	c.SetNXFn = func(context.Context, string, any, time.Duration) *redis.BoolCmd {
		return redis.NewBoolResult(false, nil)
	}
	_, err = s.ConsumeResetToken(ctx, c, tok)
	require.ErrorIs(t, err, ErrResetTokenUsed)

	// 快取失敗
	c.SetNXFn = func(context.Context, string, any, time.Duration) *redis.BoolCmd {
		return redis.NewBoolResult(false, errors.New("redis down"))
	}
	_, err = s.ConsumeResetToken(ctx, c, tok)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrResetTokenUsed)
}
