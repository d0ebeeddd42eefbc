package http

import (
	"board-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/conversations", h.ListConversations)
		api.GET("/conversations/:conversation_id/messages", h.GetMessages)
		api.DELETE("/conversations/:conversation_id", h.DeleteConversation)
		api.POST("/messages", h.SendMessage)
	}
}
