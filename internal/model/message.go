package model

import "time"

// Conversation is a private chat between two users.
type Conversation struct {
	ID            string
	UserAID       string
	UserBID       string
	CreatedAt     time.Time
	LastMessageAt *time.Time
}

// OtherParticipant returns the participant that is not userID.
func (c Conversation) OtherParticipant(userID string) string {
	if c.UserAID == userID {
		return c.UserBID
	}
	return c.UserAID
}

// HasParticipant reports whether userID takes part in the conversation.
func (c Conversation) HasParticipant(userID string) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// Message is a single private message within a conversation.
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	SenderUsername string
	Text           string
	CreatedAt      time.Time
}
