// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Name     string `json:"name" validate:"required" example:"Alice"`
	Password string `json:"password" validate:"required,min=8" example:"Secret123!"`
}
