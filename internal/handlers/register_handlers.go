package handlers

import (
	"github.com/SscSPs/alsabqon_app/cmd/docs"
	portssvc "github.com/SscSPs/alsabqon_app/internal/core/ports/services"
	"github.com/SscSPs/alsabqon_app/internal/middleware"
	"github.com/SscSPs/alsabqon_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.GET("/health", getHealth)

	setupAPIRoutes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the /api group. Scripture routes are public;
// ledger routes resolve the owner of the request first.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")
	api.GET("/", getHome)
	registerQuranRoutes(api, services.Scripture)

	owned := api.Group("", middleware.OwnerMiddleware(cfg.JWTSecret, cfg.DefaultUserID))
	registerAzkarRoutes(owned, services.Practice, services.Catalog)
	registerCharityRoutes(owned, services.Practice, services.Catalog)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
