// File: internal/handler/content/create_content.go
package content

import (
	"net/http"

	"dracarys/internal/database"
	"dracarys/internal/dto"
	"dracarys/internal/model"
	"dracarys/internal/repository"

	"github.com/labstack/echo/v4"
)

// CreateContentHandler 建立頁面內容區塊（super_user 專屬）
// @Summary     Create content block
// @Description 建立新的頁面內容區塊
// @Tags        content
// @Accept      json
// @Produce     json
// @Param       request body dto.CreateContentRequest true "內容區塊"
// @Success     201 {object} model.Content
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /content [post]
func CreateContentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateContentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		ct := &model.Content{
			Page:       req.Page,
			Section:    req.Section,
			Title:      req.Title,
			Body:       req.Content,
			ImageURL:   req.ImageURL,
			OrderIndex: req.OrderIndex,
		}
		created, err := repository.CreateContent(c.Request().Context(), db, ct)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create content"})
		}
		return c.JSON(http.StatusCreated, created)
	}
}
