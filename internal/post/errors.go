package post

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrContentRequired = errors.New("content is required")
	ErrContentTooLong  = errors.New("content too long")
	ErrCommentRequired = errors.New("comment text is required")
	ErrCommentTooLong  = errors.New("comment too long")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNotOwner        = errors.New("caller does not own this resource")
	ErrAdminRequired   = errors.New("admin role required")
)
