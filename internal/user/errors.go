package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWrongCredentials   = errors.New("wrong username or password")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrAdminRequired      = errors.New("admin role required")
	ErrCannotTargetSelf   = errors.New("cannot apply this action to your own account")
	ErrCannotTargetAdmins = errors.New("cannot apply this action to an admin account")
)
