package post

import (
	"context"

	"board-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	ListMine(ctx context.Context, sc model.Scope, input ListMineInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, input DetailInput) (DetailOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Post, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Post, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error

	AddComment(ctx context.Context, sc model.Scope, input AddCommentInput) (model.Comment, error)
	DeleteComment(ctx context.Context, sc model.Scope, input DeleteCommentInput) error

	AdminList(ctx context.Context, sc model.Scope, input AdminListInput) (ListOutput, error)
}
