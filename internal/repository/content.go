// File: internal/repository/content.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"dracarys/internal/database"
	"dracarys/internal/model"
)

const contentColumns = `id, page, section, title, body, image_url, order_index, is_active, created_at, updated_at`

// ContentPatch 局部更新欄位，nil 表示不更動
type ContentPatch struct {
	Title      *string
	Body       *string
	ImageURL   *string
	OrderIndex *int
	IsActive   *bool
}

func scanContent(row interface{ Scan(dest ...any) error }) (*model.Content, error) {
	ct := &model.Content{}
	if err := row.Scan(
		&ct.ID,
		&ct.Page,
		&ct.Section,
		&ct.Title,
		&ct.Body,
		&ct.ImageURL,
		&ct.OrderIndex,
		&ct.IsActive,
		&ct.CreatedAt,
		&ct.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return ct, nil
}

// ListContentByPage 列出指定頁面的啟用內容，依 order_index 排序
func ListContentByPage(ctx context.Context, db database.DB, page string) ([]model.Content, error) {
	rows, err := db.Query(ctx,
		`SELECT `+contentColumns+`
		 FROM content
		 WHERE page = $1 AND is_active = TRUE
		 ORDER BY order_index`,
		page,
	)
	if err != nil {
		return nil, fmt.Errorf("ListContentByPage: %w", err)
	}
	defer rows.Close()

	var items []model.Content
	for rows.Next() {
		ct, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("ListContentByPage: %w", err)
		}
		items = append(items, *ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListContentByPage: %w", err)
	}
	return items, nil
}

func GetContentByID(ctx context.Context, db database.DB, id int) (*model.Content, error) {
	row := db.QueryRow(ctx,
		`SELECT `+contentColumns+`
		 FROM content WHERE id = $1`,
		id,
	)
	ct, err := scanContent(row)
	if err != nil {
		return nil, fmt.Errorf("GetContentByID: %w", err)
	}
	return ct, nil
}

func CreateContent(ctx context.Context, db database.DB, ct *model.Content) (*model.Content, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO content (page, section, title, body, image_url, order_index)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, is_active, created_at`,
		ct.Page,
		ct.Section,
		ct.Title,
		ct.Body,
		ct.ImageURL,
		ct.OrderIndex,
	)
	if err := row.Scan(&ct.ID, &ct.IsActive, &ct.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateContent: %w", err)
	}
	return ct, nil
}

// UpdateContent 逐欄位套用 patch，僅更新有帶值的欄位
func UpdateContent(ctx context.Context, db database.DB, id int, p ContentPatch) (*model.Content, error) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Body != nil {
		add("body", *p.Body)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if p.OrderIndex != nil {
		add("order_index", *p.OrderIndex)
	}
	if p.IsActive != nil {
		add("is_active", *p.IsActive)
	}
	if len(sets) == 0 {
		return GetContentByID(ctx, db, id)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE content SET %s WHERE id = $%d RETURNING `+contentColumns,
		strings.Join(sets, ", "), len(args),
	)

	ct, err := scanContent(db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("UpdateContent: %w", err)
	}
	return ct, nil
}
