// File: internal/dto/user_response.go
package dto

import (
	"time"

	"dracarys/internal/model"
)

// UserResponse 定義回傳的使用者資訊，不含密碼哈希
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Email     string     `json:"email" example:"alice@example.com"`
	Name      string     `json:"name" example:"Alice"`
	Role      string     `json:"role" example:"client"`
	IsActive  bool       `json:"is_active" example:"true"`
	CreatedAt time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NewUserResponse 由 model.User 組裝回應
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
