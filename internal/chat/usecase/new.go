package usecase

import (
	"board-srv/internal/chat"
	"board-srv/internal/chat/repository"
	userRepo "board-srv/internal/user/repository"
	"board-srv/pkg/log"
)

type implUseCase struct {
	repo  repository.PostgresRepository
	users userRepo.PostgresRepository
	l     log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	users userRepo.PostgresRepository,
	l log.Logger,
) chat.UseCase {
	return &implUseCase{
		repo:  repo,
		users: users,
		l:     l,
	}
}
