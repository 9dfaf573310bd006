// File: internal/dto/product_request.go
package dto

// CreateProductRequest 建立商品，price 以分為單位
// swagger:model dto.CreateProductRequest
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required" example:"Dracarys Pro"`
	Description *string `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty" validate:"omitempty,min=0" example:"9900"`
	Category    string  `json:"category" validate:"required" example:"subscription"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Features    *string `json:"features,omitempty"`
}

// UpdateProductRequest 局部更新：僅更新有帶值的欄位
// swagger:model dto.UpdateProductRequest
type UpdateProductRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Price        *int    `json:"price,omitempty" validate:"omitempty,min=0"`
	Category     *string `json:"category,omitempty"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Features     *string `json:"features,omitempty"`
	Rating       *int    `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	ReviewsCount *int    `json:"reviews_count,omitempty" validate:"omitempty,min=0"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
