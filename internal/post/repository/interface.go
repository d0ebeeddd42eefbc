package repository

import (
	"context"

	"board-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	PostRepository
	CommentRepository
}

// PostRepository - post CRUD. Reads always include the comment thread so
// the ranking engine can score comment matches.
type PostRepository interface {
	CreatePost(ctx context.Context, opt CreatePostOptions) (model.Post, error)
	GetPostByID(ctx context.Context, id string) (model.Post, error)
	ListPosts(ctx context.Context, opt ListPostsOptions) ([]model.Post, error)
	UpdatePost(ctx context.Context, opt UpdatePostOptions) (model.Post, error)
	DeletePost(ctx context.Context, id string) error
	CountPosts(ctx context.Context, opt CountPostsOptions) (int64, error)
}

// CommentRepository - comment CRUD. Deletion is soft.
type CommentRepository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	GetCommentByID(ctx context.Context, id string) (model.Comment, error)
	SoftDeleteComment(ctx context.Context, id string) error
	CountComments(ctx context.Context, opt CountCommentsOptions) (int64, error)
}

// Cache caches the full post list between writes.
type Cache interface {
	GetPosts(ctx context.Context) ([]model.Post, error)
	SetPosts(ctx context.Context, posts []model.Post) error
	Invalidate(ctx context.Context) error
}
