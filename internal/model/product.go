// File: internal/model/product.go
package model

import "time"

// Product 商品，Price 以分為單位，Features 為 JSON 字串
type Product struct {
	ID           int        `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Description  *string    `db:"description" json:"description,omitempty"`
	Price        *int       `db:"price" json:"price,omitempty"`
	Category     string     `db:"category" json:"category"`
	ImageURL     *string    `db:"image_url" json:"image_url,omitempty"`
	Features     *string    `db:"features" json:"features,omitempty"`
	Rating       int        `db:"rating" json:"rating"`
	ReviewsCount int        `db:"reviews_count" json:"reviews_count"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
