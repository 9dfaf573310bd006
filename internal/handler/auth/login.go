// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"dracarys/internal/database"
	"dracarys/internal/dto"
	"dracarys/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳令牌封包
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.TokenResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// 帳號不存在與密碼錯誤回應一致，避免洩漏帳號存在與否
		user, err := service.Authenticate(c.Request().Context(), db, strings.ToLower(req.Email), req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "incorrect email or password"})
		}

		token, err := tokens.IssueSessionToken(user.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, dto.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        dto.NewUserResponse(user),
		})
	}
}
