package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"board-srv/internal/chat"
	"board-srv/internal/middleware"
	"board-srv/pkg/log"
)

// Handler - Interface for the chat websocket handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l   log.Logger
	uc  chat.UseCase
	hub *Hub

	upgrader websocket.Upgrader
}

// New - Factory
func New(l log.Logger, uc chat.UseCase, hub *Hub) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the browser client runs on its own origin in development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/ws", mw.Auth(), h.Serve)
}
