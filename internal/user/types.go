package user

import (
	"board-srv/internal/model"
	"board-srv/pkg/paginator"
)

// RegisterInput creates an account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput authenticates a user.
type LoginInput struct {
	Username string
	Password string
}

// AuthOutput is a signed token with the account it belongs to.
type AuthOutput struct {
	Token string
	User  model.User
}

// ChangePasswordInput rotates the caller's password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// AdminListInput lists users for the admin dashboard with ranked username
// search.
type AdminListInput struct {
	Search string
	Page   int
	Limit  int64
}

// AdminListOutput is a page of users.
type AdminListOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}

// SetBlockedInput blocks or unblocks an account.
type SetBlockedInput struct {
	UserID  string
	Blocked bool
}

// DeleteInput removes an account.
type DeleteInput struct {
	UserID string
}
