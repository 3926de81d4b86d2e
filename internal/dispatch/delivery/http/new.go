package http

import (
	"inventory-srv/internal/dispatch"
	"inventory-srv/internal/middleware"
	"inventory-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho equipment delivery HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc dispatch.UseCase
}

// New - Factory
func New(l log.Logger, uc dispatch.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
