// File: internal/handler/auth/forgot_password.go
package auth

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"dracarys/internal/database"
	"dracarys/internal/dto"
	"dracarys/internal/mailer"
	"dracarys/internal/repository"
	"dracarys/internal/service"
	"dracarys/internal/worker"

	"github.com/labstack/echo/v4"
)

// ForgotPasswordHandler 受理密碼重設請求
// 無論 Email 是否存在一律回傳相同訊息；查詢與寄信移入 worker 執行，
// 回應時間不隨帳號存在與否變動，寄信失敗僅記錄不回傳
// @Summary     Request a password reset
// @Description 若帳號存在則寄出重設連結，回應內容固定
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.ForgotPasswordRequest true "帳號 Email"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Router      /auth/forgot-password [post]
func ForgotPasswordHandler(db database.DB, tokens *service.TokenService, m mailer.Mailer, wp worker.Pool, frontendBaseURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.ForgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		email := strings.ToLower(req.Email)
		wp.Submit(func() {
			// 請求已回應，不可沿用 request context
			user, err := repository.GetUserByEmail(context.Background(), db, email)
			if err != nil {
				return
			}
			token, err := tokens.IssueResetToken(user.Email)
			if err != nil {
				log.Printf("forgot-password: issue reset token: %v", err)
				return
			}
			resetURL := frontendBaseURL + "/reset-password?token=" + url.QueryEscape(token)
			if err := m.SendPasswordReset(user.Email, resetURL); err != nil {
				log.Printf("forgot-password: send mail to %s: %v", user.Email, err)
			}
		})

		return c.JSON(http.StatusOK, dto.MessageResponse{
			Message: "if an account exists for that email, a reset link has been sent",
		})
	}
}
