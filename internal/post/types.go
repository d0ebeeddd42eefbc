package post

import (
	"board-srv/internal/model"
	"board-srv/internal/rank"
	"board-srv/pkg/paginator"
)

const (
	// MaxContentLen caps post content length.
	MaxContentLen = 2000
	// MaxCommentLen caps comment length.
	MaxCommentLen = 500
)

// ListInput selects, ranks and paginates the home feed.
type ListInput struct {
	Search   string
	Field    rank.Field
	Category string
	Page     int
	Limit    int64
}

// ListMineInput lists the caller's own posts.
type ListMineInput struct {
	Search   string
	Field    rank.Field
	Category string
	Page     int
	Limit    int64
}

// AdminListInput lists all posts for moderation; the search term matches
// content, author and comment threads at once.
type AdminListInput struct {
	Search string
	Page   int
	Limit  int64
}

// PostItem is one ranked post with its content split into highlight
// segments when a search term was active.
type PostItem struct {
	Post     model.Post
	Segments []rank.Segment
}

// ListOutput is a page of ranked posts. TotalUnfiltered counts the
// collection before the search narrowed it, so an empty page can be told
// apart from an empty board.
type ListOutput struct {
	Items           []PostItem
	Paginator       paginator.Paginator
	TotalUnfiltered int64
}

// DetailInput fetches one post, optionally searching within its comments.
type DetailInput struct {
	PostID        string
	CommentSearch string
}

// CommentItem is one ranked comment with highlight segments.
type CommentItem struct {
	Comment  model.Comment
	Segments []rank.Segment
}

// DetailOutput is one post with its visible (optionally searched) comments.
type DetailOutput struct {
	Post     model.Post
	Comments []CommentItem
}

// CreateInput creates a post.
type CreateInput struct {
	Content  string
	Category string
}

// UpdateInput edits a post's content or category. Empty fields keep their
// current value.
type UpdateInput struct {
	PostID   string
	Content  string
	Category string
}

// DeleteInput deletes a post.
type DeleteInput struct {
	PostID string
}

// AddCommentInput comments on a post.
type AddCommentInput struct {
	PostID string
	Text   string
}

// DeleteCommentInput soft-deletes a comment.
type DeleteCommentInput struct {
	PostID    string
	CommentID string
}
