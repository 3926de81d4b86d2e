package http

import (
	"time"

	"inventory-srv/config"
	"inventory-srv/internal/authentication"
	"inventory-srv/internal/middleware"
	"inventory-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho authentication HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l          log.Logger
	uc         authentication.UseCase
	cookie     config.CookieConfig
	refreshTTL time.Duration
}

// New - Factory
func New(l log.Logger, uc authentication.UseCase, cookie config.CookieConfig, refreshTTL time.Duration) Handler {
	return &handler{
		l:          l,
		uc:         uc,
		cookie:     cookie,
		refreshTTL: refreshTTL,
	}
}
