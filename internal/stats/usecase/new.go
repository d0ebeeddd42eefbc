package usecase

import (
	postRepo "board-srv/internal/post/repository"
	"board-srv/internal/stats"
	userRepo "board-srv/internal/user/repository"
	"board-srv/pkg/log"
	"board-srv/pkg/redis"
)

type implUseCase struct {
	users    userRepo.PostgresRepository
	posts    postRepo.PostgresRepository
	redis    redis.IRedis
	presence string
	l        log.Logger
}

// New - Factory function. presence is the Redis set the websocket hub
// maintains for connected users.
func New(
	users userRepo.PostgresRepository,
	posts postRepo.PostgresRepository,
	rd redis.IRedis,
	presence string,
	l log.Logger,
) stats.UseCase {
	return &implUseCase{
		users:    users,
		posts:    posts,
		redis:    rd,
		presence: presence,
		l:        l,
	}
}
