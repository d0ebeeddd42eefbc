package model

import "time"

// Post categories.
const (
	CategoryGeneral      = "general"
	CategoryMeme         = "meme"
	CategoryConfession   = "confession"
	CategoryQuestion     = "question"
	CategoryAnnouncement = "announcement"
)

// Categories lists all valid post categories.
var Categories = []string{
	CategoryGeneral,
	CategoryMeme,
	CategoryConfession,
	CategoryQuestion,
	CategoryAnnouncement,
}

// IsValidCategory reports whether c is a known category.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Post represents a short text post with its comment thread.
type Post struct {
	ID        string
	UserID    string
	Username  string
	Content   string
	Category  string
	Comments  []Comment
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveComments returns the post's comments with soft-deleted ones removed.
func (p Post) ActiveComments() []Comment {
	out := make([]Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		if !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out
}
