package http

import (
	"board-srv/internal/middleware"
	"board-srv/internal/stats"
	"board-srv/pkg/discord"
	"board-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the stats HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      stats.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc stats.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
