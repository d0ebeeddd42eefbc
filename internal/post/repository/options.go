package repository

import "time"

type CreatePostOptions struct {
	UserID   string
	Username string
	Content  string
	Category string
}

type ListPostsOptions struct {
	UserID   string // filter by author; empty means all
	Category string // filter by category; empty means all
}

type UpdatePostOptions struct {
	PostID   string
	Content  string
	Category string
}

type CountPostsOptions struct {
	Since time.Time // zero means all time
}

type CreateCommentOptions struct {
	PostID   string
	UserID   string
	Username string
	Text     string
}

type CountCommentsOptions struct {
	Since time.Time // zero means all time
}
