// File: internal/dto/reset_password_request.go
package dto

// swagger:model dto.ResetPasswordRequest
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required" example:"eyJhbGciOi..."`
	NewPassword string `json:"new_password" validate:"required,min=8" example:"NewSecret456!"`
}
