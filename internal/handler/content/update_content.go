// File: internal/handler/content/update_content.go
package content

import (
	"errors"
	"net/http"
	"strconv"

	"dracarys/internal/database"
	"dracarys/internal/dto"
	"dracarys/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// UpdateContentHandler 局部更新頁面內容區塊（super_user 專屬）
// @Summary     Update content block
// @Description 僅更新請求中有帶值的欄位
// @Tags        content
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "內容區塊 ID"
// @Param       request body dto.UpdateContentRequest true "要更新的欄位"
// @Success     200 {object} model.Content
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /content/{id} [put]
func UpdateContentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid content id"})
		}

		var req dto.UpdateContentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		patch := repository.ContentPatch{
			Title:      req.Title,
			Body:       req.Content,
			ImageURL:   req.ImageURL,
			OrderIndex: req.OrderIndex,
			IsActive:   req.IsActive,
		}
		updated, err := repository.UpdateContent(c.Request().Context(), db, id, patch)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "content not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update content"})
		}
		return c.JSON(http.StatusOK, updated)
	}
}
