package user

import (
	"context"

	"board-srv/internal/model"
)

// TokenIssuer signs auth tokens. Implemented by pkg/jwt.Manager.
type TokenIssuer interface {
	GenerateToken(userID, username, role string) (string, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Me(ctx context.Context, sc model.Scope) (model.User, error)
	ChangePassword(ctx context.Context, sc model.Scope, input ChangePasswordInput) error

	AdminList(ctx context.Context, sc model.Scope, input AdminListInput) (AdminListOutput, error)
	SetBlocked(ctx context.Context, sc model.Scope, input SetBlockedInput) (model.User, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error
}
