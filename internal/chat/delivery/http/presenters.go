package http

import (
	"board-srv/internal/chat"
	"board-srv/internal/model"
	"board-srv/pkg/response"
)

type sendMessageReq struct {
	ToUserID string `json:"to_user_id" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		ToUserID: r.ToUserID,
		Text:     r.Text,
	}
}

type messageResp struct {
	ID             string            `json:"id"`
	ConversationID string            `json:"conversation_id"`
	SenderID       string            `json:"sender_id"`
	SenderUsername string            `json:"sender_username"`
	Text           string            `json:"text"`
	CreatedAt      response.DateTime `json:"created_at"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderUsername: m.SenderUsername,
		Text:           m.Text,
		CreatedAt:      response.DateTime(m.CreatedAt),
	}
}

type conversationResp struct {
	ID            string       `json:"id"`
	OtherUserID   string       `json:"other_user_id"`
	OtherUsername string       `json:"other_username"`
	LastMessage   *messageResp `json:"last_message,omitempty"`
}

type listConversationsResp struct {
	Conversations []conversationResp `json:"conversations"`
}

func (h *handler) newListConversationsResp(o chat.ListConversationsOutput) listConversationsResp {
	resp := listConversationsResp{
		Conversations: make([]conversationResp, 0, len(o.Conversations)),
	}
	for _, item := range o.Conversations {
		cr := conversationResp{
			ID:            item.Conversation.ID,
			OtherUserID:   item.OtherUserID,
			OtherUsername: item.OtherUsername,
		}
		if item.LastMessage != nil {
			m := newMessageResp(*item.LastMessage)
			cr.LastMessage = &m
		}
		resp.Conversations = append(resp.Conversations, cr)
	}
	return resp
}

type messagesResp struct {
	ConversationID string        `json:"conversation_id"`
	Messages       []messageResp `json:"messages"`
}

func (h *handler) newMessagesResp(o chat.GetMessagesOutput) messagesResp {
	resp := messagesResp{
		ConversationID: o.Conversation.ID,
		Messages:       make([]messageResp, 0, len(o.Messages)),
	}
	for _, m := range o.Messages {
		resp.Messages = append(resp.Messages, newMessageResp(m))
	}
	return resp
}
