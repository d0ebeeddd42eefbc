package chat

import (
	"context"

	"board-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListConversations(ctx context.Context, sc model.Scope) (ListConversationsOutput, error)
	GetMessages(ctx context.Context, sc model.Scope, input GetMessagesInput) (GetMessagesOutput, error)
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (model.Message, error)
	DeleteConversation(ctx context.Context, sc model.Scope, input DeleteConversationInput) error
}
