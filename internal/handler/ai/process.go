// File: internal/handler/ai/process.go
package ai

import (
	"net/http"

	"dracarys/internal/dto"
	"dracarys/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ProcessHandler AI 入口，目前僅回聲輸入
// TODO: 串接實際的 AI agent 服務後移除回聲邏輯
// @Summary     Process AI input
// @Description 接收文字輸入並回傳處理結果（暫為回聲）
// @Tags        ai
// @Accept      json
// @Produce     json
// @Param       request body dto.AIProcessRequest true "輸入文字"
// @Success     200 {object} dto.AIProcessResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ai/process [post]
func ProcessHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.AIProcessRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "could not validate credentials"})
		}

		return c.JSON(http.StatusOK, dto.AIProcessResponse{
			Input:    req.InputText,
			Response: "AI processed: " + req.InputText,
			UserID:   user.ID,
		})
	}
}
