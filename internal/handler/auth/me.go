// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"dracarys/internal/dto"
	"dracarys/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 Bearer 令牌取得當前使用者詳細資訊
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "could not validate credentials"})
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}
