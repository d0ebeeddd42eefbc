package http

import (
	"errors"

	"board-srv/internal/post"
	pkgErrors "board-srv/pkg/errors"
)

var (
	errPostNotFound    = pkgErrors.NewHTTPError(404, "Post not found")
	errCommentNotFound = pkgErrors.NewHTTPError(404, "Comment not found")
	errContentRequired = pkgErrors.NewHTTPError(400, "Content is required")
	errContentTooLong  = pkgErrors.NewHTTPError(400, "Content too long (max 2000 characters)")
	errCommentRequired = pkgErrors.NewHTTPError(400, "Comment text is required")
	errCommentTooLong  = pkgErrors.NewHTTPError(400, "Comment too long (max 500 characters)")
	errInvalidCategory = pkgErrors.NewHTTPError(400, "Invalid category")
	errNotOwner        = pkgErrors.NewHTTPError(403, "You do not own this resource")
	errAdminRequired   = pkgErrors.NewHTTPError(403, "Admin role required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		return errPostNotFound
	case errors.Is(err, post.ErrCommentNotFound):
		return errCommentNotFound
	case errors.Is(err, post.ErrContentRequired):
		return errContentRequired
	case errors.Is(err, post.ErrContentTooLong):
		return errContentTooLong
	case errors.Is(err, post.ErrCommentRequired):
		return errCommentRequired
	case errors.Is(err, post.ErrCommentTooLong):
		return errCommentTooLong
	case errors.Is(err, post.ErrInvalidCategory):
		return errInvalidCategory
	case errors.Is(err, post.ErrNotOwner):
		return errNotOwner
	case errors.Is(err, post.ErrAdminRequired):
		return errAdminRequired
	default:
		panic(err)
	}
}
