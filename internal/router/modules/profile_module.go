package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/philgetzen/favorites-tracker-sub003/internal/container"
	handlers "github.com/philgetzen/favorites-tracker-sub003/internal/interface/http"
	"github.com/philgetzen/favorites-tracker-sub003/internal/interface/middleware"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/helpers"
)

// ProfileModule wires the profile routes, all behind auth.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	grp := rg.Group("/profile")
	grp.Use(
		middleware.Auth(rdb, m.JWT),
		middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		grp.GET("", m.Handler.GetProfile)
		grp.PUT("", m.Handler.UpdateProfile)
		grp.POST("/avatar", m.Handler.UploadAvatar)
	}
}
