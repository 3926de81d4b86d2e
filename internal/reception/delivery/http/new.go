package http

import (
	"inventory-srv/internal/middleware"
	"inventory-srv/internal/reception"
	"inventory-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho equipment reception HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc reception.UseCase
}

// New - Factory
func New(l log.Logger, uc reception.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
