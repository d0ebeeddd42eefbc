package http

import (
	"board-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	authed := r.Group("/api/v1/auth")
	authed.Use(mw.Auth())
	{
		authed.POST("/logout", h.Logout)
		authed.GET("/me", h.Me)
		authed.PUT("/password", h.ChangePassword)
	}

	admin := r.Group("/api/v1/admin")
	admin.Use(mw.Auth(), mw.RequireAdmin())
	{
		admin.GET("/users", h.AdminList)
		admin.PUT("/users/:user_id/block", h.Block)
		admin.PUT("/users/:user_id/unblock", h.Unblock)
		admin.DELETE("/users/:user_id", h.Delete)
	}
}
