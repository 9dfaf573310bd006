// File: internal/handler/products/list_products.go
package products

import (
	"net/http"

	"dracarys/internal/database"
	"dracarys/internal/dto"
	"dracarys/internal/model"
	"dracarys/internal/repository"

	"github.com/labstack/echo/v4"
)

// ListProductsHandler 列出啟用商品
// @Summary     List products
// @Description 回傳啟用商品，可用 category 參數過濾分類
// @Tags        products
// @Produce     json
// @Param       category query string false "商品分類"
// @Success     200 {array} model.Product
// @Failure     500 {object} dto.HTTPError
// @Router      /products [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := repository.ListProducts(c.Request().Context(), db, c.QueryParam("category"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list products"})
		}
		if items == nil {
			items = []model.Product{}
		}
		return c.JSON(http.StatusOK, items)
	}
}
