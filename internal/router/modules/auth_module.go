package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/philgetzen/favorites-tracker-sub003/internal/container"
	handlers "github.com/philgetzen/favorites-tracker-sub003/internal/interface/http"
	"github.com/philgetzen/favorites-tracker-sub003/internal/interface/middleware"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/helpers"
)

// AuthModule wires the account lifecycle routes.
// Public: POST /api/auth/register, /api/auth/login, /api/auth/refresh,
// /api/auth/verify/confirm
// Protected: POST /api/auth/logout, GET /api/auth/me, DELETE /api/auth/account
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	registerLimiter := middleware.RateLimit(rdb, 5, time.Minute, middleware.KeyByIP(), nil)
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIP(), nil)
	verifyLimiter := middleware.RateLimit(rdb, 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	grp := rg.Group("/auth")
	grp.POST("/register", registerLimiter, m.Handler.Register)
	grp.POST("/login", loginLimiter, m.Handler.Login)
	grp.POST("/refresh", refreshLimiter, m.Handler.Refresh)
	grp.POST("/verify/confirm", verifyLimiter, m.Handler.VerifyConfirm)

	auth := grp.Group("/")
	auth.Use(middleware.Auth(rdb, m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
		auth.DELETE("/account", m.Handler.DeleteAccount)
	}
}
