package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/philgetzen/favorites-tracker-sub003/internal/container"
	handlers "github.com/philgetzen/favorites-tracker-sub003/internal/interface/http"
	"github.com/philgetzen/favorites-tracker-sub003/internal/interface/middleware"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/helpers"
)

// CatalogModule wires the collection and item routes, all behind auth with a
// per-user limiter.
type CatalogModule struct {
	Collections *handlers.CollectionHandler
	Items       *handlers.ItemHandler
	JWT         *helpers.JWTManager
}

func NewCatalogModule(collections *handlers.CollectionHandler, items *handlers.ItemHandler, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Collections: collections, Items: items, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	auth := rg.Group("/")
	auth.Use(
		middleware.Auth(rdb, m.JWT),
		middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/collections", m.Collections.List)
		auth.POST("/collections", m.Collections.Create)
		auth.GET("/collections/:id", m.Collections.Get)
		auth.PUT("/collections/:id", m.Collections.Update)
		auth.DELETE("/collections/:id", m.Collections.Delete)

		auth.GET("/items", m.Items.List)
		auth.POST("/items", m.Items.Create)
		auth.GET("/items/:id", m.Items.Get)
		auth.PUT("/items/:id", m.Items.Update)
		auth.DELETE("/items/:id", m.Items.Delete)
	}
}
