package usecase

import (
	"board-srv/internal/post"
	"board-srv/internal/post/repository"
	"board-srv/pkg/kafka"
	"board-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	cache    repository.Cache
	producer kafka.IProducer
	pinned   []string
	l        log.Logger
}

// New - Factory function. pinned lists usernames whose posts lead the feed.
func New(
	repo repository.PostgresRepository,
	cache repository.Cache,
	producer kafka.IProducer,
	pinned []string,
	l log.Logger,
) post.UseCase {
	return &implUseCase{
		repo:     repo,
		cache:    cache,
		producer: producer,
		pinned:   pinned,
		l:        l,
	}
}
