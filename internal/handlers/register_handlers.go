package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/sistemtoko/sistem_toko_app/cmd/docs"
	portssvc "github.com/sistemtoko/sistem_toko_app/internal/core/ports/services"
	"github.com/sistemtoko/sistem_toko_app/internal/middleware"
	"github.com/sistemtoko/sistem_toko_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group behind the auth middleware.
func setupAPIRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerKasRoutes(api, services.Kas)
	registerAkunRoutes(api, services.Akun)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
