// File: internal/model/content.go
package model

import "time"

// Content 頁面內容區塊，page 例如 home/about/contact/products，section 例如 hero/features
type Content struct {
	ID         int        `db:"id" json:"id"`
	Page       string     `db:"page" json:"page"`
	Section    string     `db:"section" json:"section"`
	Title      *string    `db:"title" json:"title,omitempty"`
	Body       *string    `db:"body" json:"content,omitempty"`
	ImageURL   *string    `db:"image_url" json:"image_url,omitempty"`
	OrderIndex int        `db:"order_index" json:"order_index"`
	IsActive   bool       `db:"is_active" json:"is_active"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
