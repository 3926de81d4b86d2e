package http

import (
	"inventory-srv/internal/middleware"
	"inventory-srv/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	equipment := r.Group("/api/v1/equipment", mw.Auth())
	{
		equipment.POST("", mw.RequireRoles(model.RoleUser, model.RoleManager, model.RoleAdmin), h.Create)
		equipment.GET("", h.List)
		equipment.GET("/category/:category", h.ListByCategory)
		equipment.GET("/status/low-stock", h.ListLowStock)
		equipment.GET("/:id", h.Detail)
		equipment.PUT("/:id", mw.RequireRoles(model.RoleManager, model.RoleAdmin), h.Update)
		equipment.DELETE("/:id", mw.RequireRoles(model.RoleManager, model.RoleAdmin), h.Delete)
	}
}
