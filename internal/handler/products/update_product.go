// File: internal/handler/products/update_product.go
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

// UpdateProductHandler 局部更新商品（super_user 專屬）
// @Summary     Update product
// @Description 僅更新請求中有帶值的欄位
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "商品 ID"
// @Param       request body dto.UpdateProductRequest true "要更新的欄位"
// @Success     200 {object} model.Product
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /products/{id} [put]
func UpdateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid product id"})
		}

		var req dto.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		patch := repository.ProductPatch{
			Name:         req.Name,
			Description:  req.Description,
			Price:        req.Price,
			Category:     req.Category,
			ImageURL:     req.ImageURL,
			Features:     req.Features,
			Rating:       req.Rating,
			ReviewsCount: req.ReviewsCount,
			IsActive:     req.IsActive,
		}
		updated, err := repository.UpdateProduct(c.Request().Context(), db, id, patch)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update product"})
		}
		return c.JSON(http.StatusOK, updated)
	}
}
