package model

import "time"

// Comment represents a comment on a post. Deletion is soft: the record
// survives upstream but must be excluded from display, search and counts.
type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Username  string
	Text      string
	IsDeleted bool
	CreatedAt time.Time
}
