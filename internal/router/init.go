package router

import (
	"github.com/philgetzen/favorites-tracker-sub003/internal/application"
	"github.com/philgetzen/favorites-tracker-sub003/internal/container"
	"github.com/philgetzen/favorites-tracker-sub003/internal/infrastructure/provider"
	handlers "github.com/philgetzen/favorites-tracker-sub003/internal/interface/http"
	"github.com/philgetzen/favorites-tracker-sub003/internal/router/modules"
)

// InitModules builds the application services on top of the shared repository
// provider and registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	repos := provider.Shared()
	cfg := container.GetConfig()
	logger := container.GetLogger()
	rdb := container.GetRedis()
	es := container.GetES()

	authSvc := application.NewAuthService(
		repos.Auth(),
		repos.Users(),
		container.GetJWT(),
		rdb,
		logger,
		container.GetRabbitPub(),
		cfg.AppURL,
		cfg.VerifyEmailURL,
	)
	profileSvc := application.NewProfileService(repos.Users(), repos.Storage(), rdb, logger)
	catalogSvc := application.NewCatalogService(repos.Collections(), repos.Items(), logger, es, cfg.ESItemsIndex)
	templateSvc := application.NewTemplateService(repos.Templates(), repos.Users(), logger, es, cfg.ESTemplatesIndex)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	profileHandler := handlers.NewProfileHandler(profileSvc, logger)
	collectionHandler := handlers.NewCollectionHandler(catalogSvc, logger)
	itemHandler := handlers.NewItemHandler(catalogSvc, logger)
	templateHandler := handlers.NewTemplateHandler(templateSvc, logger)

	jwt := container.GetJWT()
	r.Add(modules.NewAuthModule(authHandler, jwt))
	r.Add(modules.NewProfileModule(profileHandler, jwt))
	r.Add(modules.NewCatalogModule(collectionHandler, itemHandler, jwt))
	r.Add(modules.NewTemplateModule(templateHandler, jwt))
}
