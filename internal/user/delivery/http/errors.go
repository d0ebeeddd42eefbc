package http

import (
	"errors"

	"board-srv/internal/user"
	pkgErrors "board-srv/pkg/errors"
)

var (
	errUserNotFound       = pkgErrors.NewHTTPError(404, "User not found")
	errUsernameTaken      = pkgErrors.NewHTTPError(409, "Username already taken")
	errInvalidUsername    = pkgErrors.NewHTTPError(400, "Username must be 3-20 characters of letters, digits, underscore or dash")
	errInvalidPassword    = pkgErrors.NewHTTPError(400, "Password must be at least 6 characters")
	errWrongCredentials   = pkgErrors.NewHTTPError(401, "Wrong username or password")
	errAccountBlocked     = pkgErrors.NewHTTPError(403, "Account is blocked")
	errAdminRequired      = pkgErrors.NewHTTPError(403, "Admin role required")
	errCannotTargetSelf   = pkgErrors.NewHTTPError(400, "Cannot apply this action to your own account")
	errCannotTargetAdmins = pkgErrors.NewHTTPError(400, "Cannot apply this action to an admin account")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, user.ErrUsernameTaken):
		return errUsernameTaken
	case errors.Is(err, user.ErrInvalidUsername):
		return errInvalidUsername
	case errors.Is(err, user.ErrInvalidPassword):
		return errInvalidPassword
	case errors.Is(err, user.ErrWrongCredentials):
		return errWrongCredentials
	case errors.Is(err, user.ErrAccountBlocked):
		return errAccountBlocked
	case errors.Is(err, user.ErrAdminRequired):
		return errAdminRequired
	case errors.Is(err, user.ErrCannotTargetSelf):
		return errCannotTargetSelf
	case errors.Is(err, user.ErrCannotTargetAdmins):
		return errCannotTargetAdmins
	default:
		panic(err)
	}
}
