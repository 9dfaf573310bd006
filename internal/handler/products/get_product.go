// File: internal/handler/products/get_product.go
package products

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

// GetProductHandler 取得單一商品
// @Summary     Get product
// @Tags        products
// @Produce     json
// @Param       id path int true "商品 ID"
// @Success     200 {object} model.Product
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /products/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid product id"})
		}

		product, err := repository.GetProductByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to get product"})
		}
		return c.JSON(http.StatusOK, product)
	}
}
