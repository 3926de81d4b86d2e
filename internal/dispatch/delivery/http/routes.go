package http

import (
	"inventory-srv/internal/middleware"
	"inventory-srv/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	deliveries := r.Group("/api/v1/deliveries", mw.Auth())
	{
		deliveries.POST("", h.Create)
		deliveries.GET("", h.List)
		deliveries.GET("/date-range", h.ListByDateRange)
		deliveries.GET("/unit/:unit", h.ListByUnit)
		deliveries.GET("/:id", h.Detail)
		deliveries.PUT("/:id", mw.RequireRoles(model.RoleManager, model.RoleAdmin), h.Update)
		deliveries.DELETE("/:id", mw.RequireRoles(model.RoleAdmin, model.RoleManager), h.Delete)
	}
}
