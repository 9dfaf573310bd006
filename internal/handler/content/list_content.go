// File: internal/handler/content/list_content.go
package content

import (
	"net/http"

	"dracarys/internal/database"
	"dracarys/internal/dto"
	"dracarys/internal/model"
	"dracarys/internal/repository"

	"github.com/labstack/echo/v4"
)

// ListContentHandler 列出指定頁面的啟用內容區塊
// @Summary     List page content
// @Description 依 order_index 排序回傳指定頁面的啟用內容區塊
// @Tags        content
// @Produce     json
// @Param       page path string true "頁面名稱 (home/about/contact/products)"
// @Success     200 {array} model.Content
// @Failure     500 {object} dto.HTTPError
// @Router      /content/{page} [get]
func ListContentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := repository.ListContentByPage(c.Request().Context(), db, c.Param("page"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list content"})
		}
		if items == nil {
			items = []model.Content{}
		}
		return c.JSON(http.StatusOK, items)
	}
}
