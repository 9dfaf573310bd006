// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"dracarys/internal/database"
	"dracarys/internal/dto"
	"dracarys/internal/model"
	"dracarys/internal/repository"
	"dracarys/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新帳號並直接發行登入令牌
// @Summary     Register a new user
// @Description 建立 client 角色帳號 (Email 會自動轉小寫)，成功即回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.RegisterRequest true "註冊資料"
// @Success     201 {object} dto.TokenResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Email:        req.Email,
			Name:         req.Name,
			PasswordHash: hash,
			Role:         model.RoleClient,
			IsActive:     true,
		}

		created, err := repository.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}

		token, err := tokens.IssueSessionToken(created.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, dto.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        dto.NewUserResponse(created),
		})
	}
}
