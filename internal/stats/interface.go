package stats

import (
	"context"

	"board-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Dashboard(ctx context.Context, sc model.Scope) (model.Stats, error)
}
