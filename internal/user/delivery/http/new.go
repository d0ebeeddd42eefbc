package http

import (
	"board-srv/config"
	"board-srv/internal/middleware"
	"board-srv/internal/user"
	"board-srv/pkg/discord"
	"board-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the user HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      user.UseCase
	cookie  config.CookieConfig
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc user.UseCase, cookie config.CookieConfig, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, cookie: cookie, discord: discord}
}
