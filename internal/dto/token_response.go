// File: internal/dto/token_response.go
package dto

// TokenResponse 登入/註冊成功後的令牌封包
// swagger:model dto.TokenResponse
type TokenResponse struct {
	AccessToken string       `json:"access_token" example:"eyJhbGciOi..."`
	TokenType   string       `json:"token_type" example:"bearer"`
	User        UserResponse `json:"user"`
}
