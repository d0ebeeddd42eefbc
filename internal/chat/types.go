package chat

import "board-srv/internal/model"

// ConversationItem is one conversation with the other participant resolved
// for display.
type ConversationItem struct {
	Conversation  model.Conversation
	OtherUserID   string
	OtherUsername string
	LastMessage   *model.Message
}

// ListConversationsOutput lists the caller's conversations, most recent
// activity first.
type ListConversationsOutput struct {
	Conversations []ConversationItem
}

// GetMessagesInput fetches a conversation's messages.
type GetMessagesInput struct {
	ConversationID string
	Limit          int
}

// GetMessagesOutput returns messages oldest first.
type GetMessagesOutput struct {
	Conversation model.Conversation
	Messages     []model.Message
}

// SendMessageInput sends a private message to another user. The
// conversation is created on first contact.
type SendMessageInput struct {
	ToUserID string
	Text     string
}

// DeleteConversationInput removes a conversation and its messages.
type DeleteConversationInput struct {
	ConversationID string
}
