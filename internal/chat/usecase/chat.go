package usecase

import (
	"context"
	"errors"
	"strings"

	"board-srv/internal/chat"
	"board-srv/internal/chat/repository"
	"board-srv/internal/model"
	userRepo "board-srv/internal/user/repository"
)

// ListConversations returns the caller's conversations with the other
// participant and the newest message resolved for display.
func (uc *implUseCase) ListConversations(ctx context.Context, sc model.Scope) (chat.ListConversationsOutput, error) {
	convs, err := uc.repo.ListConversations(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ListConversations: ListConversations: %v", err)
		return chat.ListConversationsOutput{}, err
	}

	out := chat.ListConversationsOutput{
		Conversations: make([]chat.ConversationItem, 0, len(convs)),
	}
	for _, c := range convs {
		item := chat.ConversationItem{
			Conversation: c,
			OtherUserID:  c.OtherParticipant(sc.UserID),
		}

		other, err := uc.users.GetUserByID(ctx, item.OtherUserID)
		if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
			uc.l.Errorf(ctx, "chat.usecase.ListConversations: GetUserByID: %v", err)
			return chat.ListConversationsOutput{}, err
		}
		// a deleted account leaves the username blank
		item.OtherUsername = other.Username

		last, err := uc.repo.GetLastMessage(ctx, c.ID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "chat.usecase.ListConversations: GetLastMessage: %v", err)
			return chat.ListConversationsOutput{}, err
		}
		if err == nil {
			item.LastMessage = &last
		}

		out.Conversations = append(out.Conversations, item)
	}

	return out, nil
}

// GetMessages returns a conversation's messages. Only participants may
// read the thread.
func (uc *implUseCase) GetMessages(ctx context.Context, sc model.Scope, input chat.GetMessagesInput) (chat.GetMessagesOutput, error) {
	c, err := uc.repo.GetConversationByID(ctx, input.ConversationID)
	if errors.Is(err, repository.ErrNotFound) {
		return chat.GetMessagesOutput{}, chat.ErrConversationNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.GetMessages: GetConversationByID: %v", err)
		return chat.GetMessagesOutput{}, err
	}
	if !c.HasParticipant(sc.UserID) {
		return chat.GetMessagesOutput{}, chat.ErrNotParticipant
	}

	msgs, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		ConversationID: c.ID,
		Limit:          input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.GetMessages: ListMessages: %v", err)
		return chat.GetMessagesOutput{}, err
	}

	return chat.GetMessagesOutput{Conversation: c, Messages: msgs}, nil
}

// SendMessage stores a private message, creating the conversation on first
// contact. Realtime delivery happens at the websocket layer; this method
// only guarantees persistence.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, input chat.SendMessageInput) (model.Message, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Message{}, chat.ErrMessageRequired
	}
	if len(text) > chat.MaxMessageLen {
		return model.Message{}, chat.ErrMessageTooLong
	}
	if input.ToUserID == sc.UserID {
		return model.Message{}, chat.ErrSelfMessage
	}

	if _, err := uc.users.GetUserByID(ctx, input.ToUserID); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return model.Message{}, chat.ErrRecipientNotFound
		}
		uc.l.Errorf(ctx, "chat.usecase.SendMessage: GetUserByID: %v", err)
		return model.Message{}, err
	}

	c, err := uc.repo.GetOrCreateConversation(ctx, sc.UserID, input.ToUserID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.SendMessage: GetOrCreateConversation: %v", err)
		return model.Message{}, err
	}

	m, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		ConversationID: c.ID,
		SenderID:       sc.UserID,
		SenderUsername: sc.Username,
		Text:           text,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.SendMessage: CreateMessage: %v", err)
		return model.Message{}, err
	}

	if err := uc.repo.TouchConversation(ctx, c.ID); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.SendMessage: TouchConversation: %v", err)
	}

	return m, nil
}

// DeleteConversation removes a conversation and its messages. Only a
// participant may delete; it disappears for both sides.
func (uc *implUseCase) DeleteConversation(ctx context.Context, sc model.Scope, input chat.DeleteConversationInput) error {
	c, err := uc.repo.GetConversationByID(ctx, input.ConversationID)
	if errors.Is(err, repository.ErrNotFound) {
		return chat.ErrConversationNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.DeleteConversation: GetConversationByID: %v", err)
		return err
	}
	if !c.HasParticipant(sc.UserID) {
		return chat.ErrNotParticipant
	}

	if err := uc.repo.DeleteConversation(ctx, c.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chat.ErrConversationNotFound
		}
		uc.l.Errorf(ctx, "chat.usecase.DeleteConversation: DeleteConversation: %v", err)
		return err
	}

	return nil
}
