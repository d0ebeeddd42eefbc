package http

import (
	"strconv"

	"board-srv/internal/chat"
	"board-srv/pkg/response"
	"board-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary List conversations
// @Description The caller's private conversations, most recent first
// @Tags Chat
// @Produce json
// @Success 200 {object} listConversationsResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/conversations [get]
func (h *handler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	o, err := h.uc.ListConversations(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.ListConversations: usecase ListConversations failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListConversationsResp(o))
}

// @Summary Get messages
// @Description A conversation's messages, oldest first
// @Tags Chat
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Param limit query int false "Only the newest N messages"
// @Success 200 {object} messagesResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/conversations/{conversation_id}/messages [get]
func (h *handler) GetMessages(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetMessages(ctx, sc, chat.GetMessagesInput{
		ConversationID: c.Param("conversation_id"),
		Limit:          limit,
	})
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.GetMessages: usecase GetMessages failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newMessagesResp(o))
}

// @Summary Delete conversation
// @Description Remove a conversation and its messages for both participants
// @Tags Chat
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/conversations/{conversation_id} [delete]
func (h *handler) DeleteConversation(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	err := h.uc.DeleteConversation(ctx, sc, chat.DeleteConversationInput{
		ConversationID: c.Param("conversation_id"),
	})
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.DeleteConversation: usecase DeleteConversation failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Send message
// @Description Send a private message; the conversation is created on first contact
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body sendMessageReq true "Recipient and text"
// @Success 200 {object} messageResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/messages [post]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.SendMessage: bind failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	m, err := h.uc.SendMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.SendMessage: usecase SendMessage failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newMessageResp(m))
}
