package httpserver

import (
	"context"

	"inventory-srv/config"
	"inventory-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// mapHandlers builds every domain bottom-up (user, authentication, inventory) and
// registers its routes on the root group.
func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.config.Cookie)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	userUC := srv.setupUserDomain(ctx)

	if err := srv.setupAuthDomain(ctx, r, mw, userUC); err != nil {
		return err
	}
	if err := srv.setupInventoryDomains(ctx, r, mw, userUC); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger())
	srv.gin.Use(middleware.Recovery(srv.l))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI, served from docs generated by swag init
	if srv.environment != config.EnvironmentProduction {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}
