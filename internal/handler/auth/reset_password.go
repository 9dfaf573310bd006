// File: internal/handler/auth/reset_password.go
package auth

import (
	"errors"
	"net/http"

	"dracarys/internal/cache"
	"dracarys/internal/database"
	"dracarys/internal/dto"
	"dracarys/internal/repository"
	"dracarys/internal/service"

	"github.com/labstack/echo/v4"
)

// ResetPasswordHandler 以重設令牌更換密碼
// 令牌單次有效，成功後即失效
// @Summary     Reset password
// @Description 驗證密碼重設令牌並設定新密碼
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.ResetPasswordRequest true "重設令牌與新密碼"
// @Success     204 "No Content"
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/reset-password [post]
func ResetPasswordHandler(db database.DB, rdb cache.Cache, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		ctx := c.Request().Context()
		email, err := tokens.ConsumeResetToken(ctx, rdb, req.Token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrResetTokenUsed) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or expired reset token"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to verify reset token"})
		}

		user, err := repository.GetUserByEmail(ctx, db, email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or expired reset token"})
		}

		hash, err := service.HashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		if err := repository.UpdateUserPassword(ctx, db, user.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update password"})
		}

		return c.NoContent(http.StatusNoContent)
	}
}
