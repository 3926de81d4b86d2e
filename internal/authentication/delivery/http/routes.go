package http

import (
	"inventory-srv/internal/middleware"
	"inventory-srv/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/refresh", h.Refresh)

		auth.GET("/me", mw.Auth(), h.Me)
		auth.GET("/admin/users", mw.Auth(), mw.RequireRoles(model.RoleAdmin), h.ListUsers)
		auth.GET("/manager/dashboard", mw.Auth(), mw.RequireRoles(model.RoleManager, model.RoleAdmin), h.ManagerDashboard)
	}
}
