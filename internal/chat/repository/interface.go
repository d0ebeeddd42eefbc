package repository

import (
	"context"

	"board-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ConversationRepository
	MessageRepository
}

// ConversationRepository - conversation CRUD
type ConversationRepository interface {
	GetOrCreateConversation(ctx context.Context, userAID, userBID string) (model.Conversation, error)
	GetConversationByID(ctx context.Context, id string) (model.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]model.Conversation, error)
	TouchConversation(ctx context.Context, id string) error
	DeleteConversation(ctx context.Context, id string) error
}

// MessageRepository - message CRUD
type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, error)
	GetLastMessage(ctx context.Context, conversationID string) (model.Message, error)
}

type CreateMessageOptions struct {
	ConversationID string
	SenderID       string
	SenderUsername string
	Text           string
}

type ListMessagesOptions struct {
	ConversationID string
	Limit          int
}
