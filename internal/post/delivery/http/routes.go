package http

import (
	"board-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/posts", h.List)
		api.POST("/posts", h.Create)
		api.GET("/posts/user/myposts", h.ListMine)
		api.GET("/posts/:post_id", h.Detail)
		api.PUT("/posts/:post_id", h.Update)
		api.DELETE("/posts/:post_id", h.Delete)
		api.POST("/posts/:post_id/comments", h.AddComment)
		api.DELETE("/posts/:post_id/comments/:comment_id", h.DeleteComment)
	}

	admin := r.Group("/api/v1/admin")
	admin.Use(mw.Auth(), mw.RequireAdmin())
	{
		// Deletes reuse the regular handlers; the usecase already
		// grants admins the owner's rights.
		admin.GET("/posts", h.AdminList)
		admin.DELETE("/posts/:post_id", h.Delete)
		admin.DELETE("/posts/:post_id/comments/:comment_id", h.DeleteComment)
	}
}
