package httpserver

import (
	"context"

	chathttp "board-srv/internal/chat/delivery/http"
	chatws "board-srv/internal/chat/delivery/ws"
	chatPostgre "board-srv/internal/chat/repository/postgre"
	chatUsecase "board-srv/internal/chat/usecase"
	"board-srv/internal/middleware"
	posthttp "board-srv/internal/post/delivery/http"
	postPostgre "board-srv/internal/post/repository/postgre"
	postRedis "board-srv/internal/post/repository/redis"
	postUsecase "board-srv/internal/post/usecase"
	statshttp "board-srv/internal/stats/delivery/http"
	statsUsecase "board-srv/internal/stats/usecase"
	userhttp "board-srv/internal/user/delivery/http"
	userPostgre "board-srv/internal/user/repository/postgre"
	userUsecase "board-srv/internal/user/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize repositories
	userRepo := userPostgre.New(srv.postgresDB, srv.l)
	postRepo := postPostgre.New(srv.postgresDB, srv.l)
	postCache := postRedis.New(srv.redisClient)
	chatRepo := chatPostgre.New(srv.postgresDB, srv.l)

	// Initialize usecases
	userUC := userUsecase.New(userRepo, srv.encrypter, srv.jwtManager, srv.kafkaProducer, srv.l)
	postUC := postUsecase.New(postRepo, postCache, srv.kafkaProducer, srv.config.Board.PinnedUsernames, srv.l)
	chatUC := chatUsecase.New(chatRepo, userRepo, srv.l)
	statsUC := statsUsecase.New(userRepo, postRepo, srv.redisClient, chatws.PresenceKey, srv.l)

	// Initialize HTTP handlers
	userHandler := userhttp.New(srv.l, userUC, srv.cookieConfig, srv.discord)
	postHandler := posthttp.New(srv.l, postUC, srv.discord)
	chatHandler := chathttp.New(srv.l, chatUC, srv.discord)
	statsHandler := statshttp.New(srv.l, statsUC, srv.discord)
	wsHandler := chatws.New(srv.l, chatUC, srv.hub)

	// Map routes
	root := srv.gin.Group("")
	userHandler.RegisterRoutes(root, mw)
	postHandler.RegisterRoutes(root, mw)
	chatHandler.RegisterRoutes(root, mw)
	statsHandler.RegisterRoutes(root, mw)
	wsHandler.RegisterRoutes(root, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
