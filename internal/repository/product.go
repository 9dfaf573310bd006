// File: internal/repository/product.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"dracarys/internal/database"
	"dracarys/internal/model"
)

const productColumns = `id, name, description, price, category, image_url, features, rating, reviews_count, is_active, created_at, updated_at`

// ProductPatch 局部更新欄位，nil 表示不更動
type ProductPatch struct {
	Name         *string
	Description  *string
	Price        *int
	Category     *string
	ImageURL     *string
	Features     *string
	Rating       *int
	ReviewsCount *int
	IsActive     *bool
}

func scanProduct(row interface{ Scan(dest ...any) error }) (*model.Product, error) {
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.ImageURL,
		&p.Features,
		&p.Rating,
		&p.ReviewsCount,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts 列出啟用商品，category 非空時加上分類過濾
func ListProducts(ctx context.Context, db database.DB, category string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE`
	var args []any
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	var items []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return items, nil
}

func GetProductByID(ctx context.Context, db database.DB, id int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT `+productColumns+`
		 FROM products WHERE id = $1`,
		id,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", err)
	}
	return p, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, category, image_url, features)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, rating, reviews_count, is_active, created_at`,
		p.Name,
		p.Description,
		p.Price,
		p.Category,
		p.ImageURL,
		p.Features,
	)
	if err := row.Scan(&p.ID, &p.Rating, &p.ReviewsCount, &p.IsActive, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

// UpdateProduct 逐欄位套用 patch，僅更新有帶值的欄位
func UpdateProduct(ctx context.Context, db database.DB, id int, p ProductPatch) (*model.Product, error) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.Category != nil {
		add("category", *p.Category)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if p.Features != nil {
		add("features", *p.Features)
	}
	if p.Rating != nil {
		add("rating", *p.Rating)
	}
	if p.ReviewsCount != nil {
		add("reviews_count", *p.ReviewsCount)
	}
	if p.IsActive != nil {
		add("is_active", *p.IsActive)
	}
	if len(sets) == 0 {
		return GetProductByID(ctx, db, id)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE products SET %s WHERE id = $%d RETURNING `+productColumns,
		strings.Join(sets, ", "), len(args),
	)

	prod, err := scanProduct(db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("UpdateProduct: %w", err)
	}
	return prod, nil
}
