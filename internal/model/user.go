package model

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string // user | admin
	IsBlocked    bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
