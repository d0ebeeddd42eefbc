package repository

import (
	"context"
	"time"

	"board-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
	SetBlocked(ctx context.Context, userID string, blocked bool) (model.User, error)
	DeleteUser(ctx context.Context, userID string) error
	CountUsers(ctx context.Context, opt CountUsersOptions) (int64, error)
}

type CreateUserOptions struct {
	Username     string
	PasswordHash string
	Role         string
}

type CountUsersOptions struct {
	BlockedOnly      bool
	LastLoginSince   time.Time // zero means no last-login constraint
	RegisteredBefore time.Time // zero means no registration constraint
}
