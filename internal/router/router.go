// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"dracarys/internal/cache"
	"dracarys/internal/config"
	"dracarys/internal/database"
	"dracarys/internal/handler"
	"dracarys/internal/handler/ai"
	"dracarys/internal/handler/auth"
	"dracarys/internal/handler/content"
	"dracarys/internal/handler/products"
	"dracarys/internal/mailer"
	"dracarys/internal/middleware"
	"dracarys/internal/service"
	"dracarys/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.TokenService, m mailer.Mailer, wp worker.Pool, cfg *config.Config) {
	requireUser := middleware.RequireUser(db, tokens)
	requireSuperUser := middleware.RequireSuperUser(db, tokens)

	api := e.Group("/api")

	// 健康檢查（公開）
	api.GET("/health", handler.HealthHandler(db, rdb))

	// 註冊、登入與密碼重設
	api.POST("/auth/register", auth.RegisterHandler(db, tokens))
	api.POST("/auth/login", auth.LoginHandler(db, tokens))
	api.GET("/auth/me", auth.MeHandler(), requireUser)
	api.POST("/auth/forgot-password", auth.ForgotPasswordHandler(db, tokens, m, wp, cfg.FrontendBaseURL))
	api.POST("/auth/reset-password", auth.ResetPasswordHandler(db, rdb, tokens))

	// 頁面內容：讀取公開，寫入 super_user 專屬
	api.GET("/content/:page", content.ListContentHandler(db))
	api.POST("/content", content.CreateContentHandler(db), requireSuperUser)
	api.PUT("/content/:id", content.UpdateContentHandler(db), requireSuperUser)

	// 商品：讀取公開，寫入 super_user 專屬
	api.GET("/products", products.ListProductsHandler(db))
	api.GET("/products/:id", products.GetProductHandler(db))
	api.POST("/products", products.CreateProductHandler(db), requireSuperUser)
	api.PUT("/products/:id", products.UpdateProductHandler(db), requireSuperUser)

	// AI 入口（需登入）
	api.POST("/ai/process", ai.ProcessHandler(), requireUser)
}
