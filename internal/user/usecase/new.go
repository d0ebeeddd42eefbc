package usecase

import (
	"board-srv/internal/user"
	"board-srv/internal/user/repository"
	"board-srv/pkg/encrypter"
	"board-srv/pkg/kafka"
	"board-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	encrypter encrypter.Encrypter
	tokens    user.TokenIssuer
	producer  kafka.IProducer
	l         log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	enc encrypter.Encrypter,
	tokens user.TokenIssuer,
	producer kafka.IProducer,
	l log.Logger,
) user.UseCase {
	return &implUseCase{
		repo:      repo,
		encrypter: enc,
		tokens:    tokens,
		producer:  producer,
		l:         l,
	}
}
