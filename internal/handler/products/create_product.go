// File: internal/handler/products/create_product.go
package products

import (
	"net/http"

	"dracarys/internal/database"
	"dracarys/internal/dto"
	"dracarys/internal/model"
	"dracarys/internal/repository"

	"github.com/labstack/echo/v4"
)

// CreateProductHandler 建立商品（super_user 專屬）
// @Summary     Create product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body dto.CreateProductRequest true "商品資料"
// @Success     201 {object} model.Product
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /products [post]
func CreateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		p := &model.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
			Features:    req.Features,
		}
		created, err := repository.CreateProduct(c.Request().Context(), db, p)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create product"})
		}
		return c.JSON(http.StatusCreated, created)
	}
}
