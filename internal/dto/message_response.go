// File: internal/dto/message_response.go
package dto

// MessageResponse 一般訊息回應
// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}
