package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"board-srv/internal/chat"
	"board-srv/internal/chat/repository"
	"board-srv/internal/model"
	userRepo "board-srv/internal/user/repository"
	"board-srv/pkg/log"
)

// --- Mocks ---

type mockRepo struct {
	conversations []model.Conversation
	messages      []model.Message

	created model.Message
	touched string
}

func (m *mockRepo) GetOrCreateConversation(_ context.Context, userAID, userBID string) (model.Conversation, error) {
	for _, c := range m.conversations {
		if c.HasParticipant(userAID) && c.HasParticipant(userBID) {
			return c, nil
		}
	}
	c := model.Conversation{ID: "conv-new", UserAID: userAID, UserBID: userBID, CreatedAt: time.Now()}
	m.conversations = append(m.conversations, c)
	return c, nil
}

func (m *mockRepo) GetConversationByID(_ context.Context, id string) (model.Conversation, error) {
	for _, c := range m.conversations {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Conversation{}, repository.ErrNotFound
}

func (m *mockRepo) ListConversations(_ context.Context, userID string) ([]model.Conversation, error) {
	out := make([]model.Conversation, 0)
	for _, c := range m.conversations {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepo) TouchConversation(_ context.Context, id string) error {
	m.touched = id
	return nil
}

func (m *mockRepo) DeleteConversation(_ context.Context, id string) error {
	for i, c := range m.conversations {
		if c.ID == id {
			m.conversations = append(m.conversations[:i], m.conversations[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRepo) CreateMessage(_ context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	msg := model.Message{
		ID:             "msg-new",
		ConversationID: opt.ConversationID,
		SenderID:       opt.SenderID,
		SenderUsername: opt.SenderUsername,
		Text:           opt.Text,
		CreatedAt:      time.Now(),
	}
	m.created = msg
	m.messages = append(m.messages, msg)
	return msg, nil
}

func (m *mockRepo) ListMessages(_ context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	out := make([]model.Message, 0)
	for _, msg := range m.messages {
		if msg.ConversationID == opt.ConversationID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *mockRepo) GetLastMessage(_ context.Context, conversationID string) (model.Message, error) {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].ConversationID == conversationID {
			return m.messages[i], nil
		}
	}
	return model.Message{}, repository.ErrNotFound
}

type mockUsers struct {
	users map[string]model.User // keyed by ID
}

func (m *mockUsers) GetUserByID(_ context.Context, id string) (model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return model.User{}, userRepo.ErrNotFound
	}
	return u, nil
}

func (m *mockUsers) CreateUser(context.Context, userRepo.CreateUserOptions) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}
func (m *mockUsers) GetUserByUsername(context.Context, string) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}
func (m *mockUsers) ListUsers(context.Context) ([]model.User, error) { return nil, nil }
func (m *mockUsers) UpdatePassword(context.Context, string, string) error {
	return errors.New("not implemented")
}
func (m *mockUsers) UpdateLastLogin(context.Context, string, time.Time) error { return nil }
func (m *mockUsers) SetBlocked(context.Context, string, bool) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}
func (m *mockUsers) DeleteUser(context.Context, string) error { return nil }
func (m *mockUsers) CountUsers(context.Context, userRepo.CountUsersOptions) (int64, error) {
	return 0, nil
}

func newTestUC(repo *mockRepo, users *mockUsers) chat.UseCase {
	return New(repo, users, log.NewNop())
}

func twoUsers() *mockUsers {
	return &mockUsers{users: map[string]model.User{
		"u1": {ID: "u1", Username: "alice"},
		"u2": {ID: "u2", Username: "bob"},
	}}
}

func aliceScope() model.Scope {
	return model.Scope{UserID: "u1", Username: "alice", Role: model.RoleUser}
}

// --- SendMessage ---

func TestSendMessage_CreatesConversationOnFirstContact(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUC(repo, twoUsers())

	m, err := uc.SendMessage(context.Background(), aliceScope(), chat.SendMessageInput{
		ToUserID: "u2",
		Text:     "  hey bob  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Text != "hey bob" {
		t.Errorf("expected trimmed text, got %q", m.Text)
	}
	if len(repo.conversations) != 1 {
		t.Fatalf("expected one conversation, got %d", len(repo.conversations))
	}
	if repo.touched != repo.conversations[0].ID {
		t.Error("expected the conversation to be touched")
	}
}

func TestSendMessage_Validation(t *testing.T) {
	uc := newTestUC(&mockRepo{}, twoUsers())
	sc := aliceScope()

	if _, err := uc.SendMessage(context.Background(), sc, chat.SendMessageInput{ToUserID: "u2", Text: "   "}); !errors.Is(err, chat.ErrMessageRequired) {
		t.Errorf("blank text: expected ErrMessageRequired, got %v", err)
	}
	long := strings.Repeat("x", chat.MaxMessageLen+1)
	if _, err := uc.SendMessage(context.Background(), sc, chat.SendMessageInput{ToUserID: "u2", Text: long}); !errors.Is(err, chat.ErrMessageTooLong) {
		t.Errorf("long text: expected ErrMessageTooLong, got %v", err)
	}
	if _, err := uc.SendMessage(context.Background(), sc, chat.SendMessageInput{ToUserID: "u1", Text: "hi me"}); !errors.Is(err, chat.ErrSelfMessage) {
		t.Errorf("self target: expected ErrSelfMessage, got %v", err)
	}
	if _, err := uc.SendMessage(context.Background(), sc, chat.SendMessageInput{ToUserID: "ghost", Text: "hi"}); !errors.Is(err, chat.ErrRecipientNotFound) {
		t.Errorf("unknown recipient: expected ErrRecipientNotFound, got %v", err)
	}
}

// --- GetMessages ---

func TestGetMessages_ParticipantOnly(t *testing.T) {
	repo := &mockRepo{
		conversations: []model.Conversation{
			{ID: "conv-1", UserAID: "u1", UserBID: "u2"},
		},
		messages: []model.Message{
			{ID: "m1", ConversationID: "conv-1", SenderID: "u1", Text: "hi"},
		},
	}
	uc := newTestUC(repo, twoUsers())

	out, err := uc.GetMessages(context.Background(), aliceScope(), chat.GetMessagesInput{ConversationID: "conv-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(out.Messages))
	}

	outsider := model.Scope{UserID: "u9", Role: model.RoleUser}
	if _, err := uc.GetMessages(context.Background(), outsider, chat.GetMessagesInput{ConversationID: "conv-1"}); !errors.Is(err, chat.ErrNotParticipant) {
		t.Errorf("expected ErrNotParticipant, got %v", err)
	}
	if _, err := uc.GetMessages(context.Background(), aliceScope(), chat.GetMessagesInput{ConversationID: "ghost"}); !errors.Is(err, chat.ErrConversationNotFound) {
		t.Errorf("expected ErrConversationNotFound, got %v", err)
	}
}

// --- DeleteConversation ---

func TestDeleteConversation_ParticipantOnly(t *testing.T) {
	repo := &mockRepo{
		conversations: []model.Conversation{
			{ID: "conv-1", UserAID: "u1", UserBID: "u2"},
		},
	}
	uc := newTestUC(repo, twoUsers())

	outsider := model.Scope{UserID: "u9", Role: model.RoleUser}
	if err := uc.DeleteConversation(context.Background(), outsider, chat.DeleteConversationInput{ConversationID: "conv-1"}); !errors.Is(err, chat.ErrNotParticipant) {
		t.Errorf("expected ErrNotParticipant, got %v", err)
	}
	if err := uc.DeleteConversation(context.Background(), aliceScope(), chat.DeleteConversationInput{ConversationID: "ghost"}); !errors.Is(err, chat.ErrConversationNotFound) {
		t.Errorf("expected ErrConversationNotFound, got %v", err)
	}
	if err := uc.DeleteConversation(context.Background(), aliceScope(), chat.DeleteConversationInput{ConversationID: "conv-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.conversations) != 0 {
		t.Error("expected the conversation to be removed")
	}
}

// --- ListConversations ---

func TestListConversations_ResolvesOtherParticipant(t *testing.T) {
	repo := &mockRepo{
		conversations: []model.Conversation{
			{ID: "conv-1", UserAID: "u1", UserBID: "u2"},
			{ID: "conv-2", UserAID: "u1", UserBID: "gone"},
			{ID: "conv-3", UserAID: "u2", UserBID: "u3"},
		},
		messages: []model.Message{
			{ID: "m1", ConversationID: "conv-1", SenderID: "u2", Text: "last word"},
		},
	}
	uc := newTestUC(repo, twoUsers())

	out, err := uc.ListConversations(context.Background(), aliceScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(out.Conversations))
	}

	first := out.Conversations[0]
	if first.OtherUserID != "u2" || first.OtherUsername != "bob" {
		t.Errorf("expected bob as the other participant, got %s/%s", first.OtherUserID, first.OtherUsername)
	}
	if first.LastMessage == nil || first.LastMessage.Text != "last word" {
		t.Error("expected the last message to be resolved")
	}

	// A deleted account leaves the username blank rather than failing.
	second := out.Conversations[1]
	if second.OtherUserID != "gone" || second.OtherUsername != "" {
		t.Errorf("expected a blank username for a deleted account, got %q", second.OtherUsername)
	}
}
