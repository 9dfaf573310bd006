// File: internal/dto/ai_request.go
package dto

// swagger:model dto.AIProcessRequest
type AIProcessRequest struct {
	InputText string `json:"input_text" validate:"required" example:"hello"`
}

// AIProcessResponse 目前僅回聲輸入，尚未串接 AI 模型
// swagger:model dto.AIProcessResponse
type AIProcessResponse struct {
	Input    string `json:"input" example:"hello"`
	Response string `json:"response" example:"AI processed: hello"`
	UserID   int    `json:"user_id" example:"1"`
}
