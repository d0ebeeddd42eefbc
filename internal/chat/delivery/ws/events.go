package ws

import (
	"encoding/json"

	"board-srv/internal/model"
	"board-srv/pkg/response"
)

// Inbound event types (client to server).
const (
	eventPrivateMessage = "private-message"
	eventTypingPrivate  = "typing-private"
)

// Outbound event types (server to client).
const (
	eventNewPrivateMessage = "new-private-message"
	eventUserTyping        = "user-typing-private"
	eventUserCount         = "userCount"
)

// inboundEvent is what a connected client sends.
type inboundEvent struct {
	Type     string `json:"type"`
	ToUserID string `json:"to_user_id,omitempty"`
	Text     string `json:"text,omitempty"`
}

// outboundEvent is what the server pushes to clients.
type outboundEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type messagePayload struct {
	ID             string            `json:"id"`
	ConversationID string            `json:"conversation_id"`
	SenderID       string            `json:"sender_id"`
	SenderUsername string            `json:"sender_username"`
	Text           string            `json:"text"`
	CreatedAt      response.DateTime `json:"created_at"`
}

type typingPayload struct {
	FromUserID   string `json:"from_user_id"`
	FromUsername string `json:"from_username"`
}

type userCountPayload struct {
	Count int64 `json:"count"`
}

// envelope is the fanout frame relayed through RabbitMQ so every API
// instance can deliver to its local connections. An empty TargetUserID
// broadcasts to everyone.
type envelope struct {
	TargetUserID string          `json:"target_user_id,omitempty"`
	Event        json.RawMessage `json:"event"`
}

func marshalEvent(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(outboundEvent{Type: eventType, Payload: raw})
}

func newMessagePayload(m model.Message) messagePayload {
	return messagePayload{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderUsername: m.SenderUsername,
		Text:           m.Text,
		CreatedAt:      response.DateTime(m.CreatedAt),
	}
}
