// File: internal/dto/forgot_password_request.go
package dto

// swagger:model dto.ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
}
