package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "inventory-srv/internal/authentication/delivery/http"
	authUsecase "inventory-srv/internal/authentication/usecase"
	"inventory-srv/internal/middleware"
	"inventory-srv/internal/user"
	userRepository "inventory-srv/internal/user/repository"
	userPostgre "inventory-srv/internal/user/repository/postgre"
	userRedis "inventory-srv/internal/user/repository/redis"
	userUsecase "inventory-srv/internal/user/usecase"
)

func (srv HTTPServer) setupUserDomain(ctx context.Context) user.UseCase {
	repo := userPostgre.New(srv.postgresDB, srv.l)

	var cache userRepository.CacheRepository
	if srv.redisClient != nil {
		cache = userRedis.New(srv.redisClient, srv.config.Redis.UserCacheTTL, srv.l)
		srv.l.Infof(ctx, "User cache enabled (ttl=%s)", srv.config.Redis.UserCacheTTL)
	}

	return userUsecase.New(srv.l, repo, cache)
}

func (srv HTTPServer) setupAuthDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, userUC user.UseCase) error {
	uc := authUsecase.New(srv.l, userUC, srv.jwtManager, srv.encrypter, authUsecase.Options{
		AllowRoleOnRegister: srv.config.AccessControl.AllowRoleOnRegister,
	})

	handler := authHTTP.New(srv.l, uc, srv.config.Cookie, srv.config.JWT.RefreshTTL)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Authentication domain registered")
	return nil
}
