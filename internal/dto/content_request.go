// File: internal/dto/content_request.go
package dto

// CreateContentRequest 建立頁面內容區塊
// swagger:model dto.CreateContentRequest
type CreateContentRequest struct {
	Page       string  `json:"page" validate:"required" example:"home"`
	Section    string  `json:"section" validate:"required" example:"hero"`
	Title      *string `json:"title,omitempty" example:"Welcome"`
	Content    *string `json:"content,omitempty" example:"Hello there"`
	ImageURL   *string `json:"image_url,omitempty" validate:"omitempty,url"`
	OrderIndex int     `json:"order_index" example:"1"`
}

// UpdateContentRequest 局部更新：僅更新有帶值的欄位
// swagger:model dto.UpdateContentRequest
type UpdateContentRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	ImageURL   *string `json:"image_url,omitempty" validate:"omitempty,url"`
	OrderIndex *int    `json:"order_index,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}
