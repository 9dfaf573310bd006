package middleware

import (
	"net/http"
	"strings"

	"dracarys/internal/database"
	"dracarys/internal/model"
	"dracarys/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "current_user"

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// CurrentUser 取出 RequireUser 放入 context 的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}

// RequireUser 驗證登入令牌、查出使用者並確認帳號啟用
// 驗證通過後將 *model.User 放入 context
func RequireUser(db database.DB, tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c)
			if err != nil {
				return err
			}
			user, err := service.ResolveCurrentUser(c.Request().Context(), db, tokens, tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}
			if err := service.RequireActive(user); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "inactive user")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireSuperUser 在 RequireUser 之上再檢查 super_user 角色
func RequireSuperUser(db database.DB, tokens *service.TokenService) echo.MiddlewareFunc {
	requireUser := RequireUser(db, tokens)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return requireUser(func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}
			if err := service.RequireRole(user, model.RoleSuperUser); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
			}
			return next(c)
		})
	}
}
