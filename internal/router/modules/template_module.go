package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/philgetzen/favorites-tracker-sub003/internal/container"
	handlers "github.com/philgetzen/favorites-tracker-sub003/internal/interface/http"
	"github.com/philgetzen/favorites-tracker-sub003/internal/interface/middleware"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/helpers"
)

// TemplateModule wires the template routes. Discovery (search, featured) is
// public; authoring and use require auth.
type TemplateModule struct {
	Handler *handlers.TemplateHandler
	JWT     *helpers.JWTManager
}

func NewTemplateModule(h *handlers.TemplateHandler, jwt *helpers.JWTManager) *TemplateModule {
	return &TemplateModule{Handler: h, JWT: jwt}
}

func (m *TemplateModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	discoveryLimiter := middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByIP(), nil)

	grp := rg.Group("/templates")
	grp.GET("/search", discoveryLimiter, m.Handler.Search)
	grp.GET("/featured", discoveryLimiter, m.Handler.Featured)

	auth := grp.Group("")
	auth.Use(
		middleware.Auth(rdb, m.JWT),
		middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.POST("/:id/use", m.Handler.Use)
	}
}
