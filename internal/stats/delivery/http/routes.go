package http

import (
	"board-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	admin := r.Group("/api/v1/admin")
	admin.Use(mw.Auth(), mw.RequireAdmin())
	{
		admin.GET("/stats", h.Dashboard)
	}
}
