package model

import "time"

// Activity event types published to the event stream.
const (
	EventUserRegistered = "user.registered"
	EventUserLogin      = "user.login"
	EventPostCreated    = "post.created"
	EventPostDeleted    = "post.deleted"
	EventCommentCreated = "comment.created"
	EventCommentDeleted = "comment.deleted"
)

// ActivityEvent is one item on the activity stream. The stats consumer
// folds these into the dashboard counters.
type ActivityEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	PostID    string    `json:"post_id,omitempty"`
	CommentID string    `json:"comment_id,omitempty"`
	At        time.Time `json:"at"`
}
