package ws

import (
	"context"

	"github.com/gin-gonic/gin"

	"board-srv/internal/chat"
	"board-srv/pkg/scope"
)

// Serve upgrades the connection and runs the read/write pumps. Each
// connection is tied to the authenticated user from the request scope.
func (h *handler) Serve(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "chat.ws.Serve: upgrade failed: %v", err)
		return
	}

	cl := newClient(h.hub, conn, sc)

	// pump lifetimes outlive the HTTP request
	runCtx := context.WithoutCancel(ctx)
	if h.hub.attach(runCtx, cl) {
		h.hub.broadcastUserCount(runCtx)
	}

	go cl.writePump()
	go cl.readPump(runCtx, h)
}

// handlePrivateMessage persists the message, then relays it to both
// participants on every instance.
func (h *handler) handlePrivateMessage(ctx context.Context, c *client, ev inboundEvent) {
	m, err := h.uc.SendMessage(ctx, c.scope(), chat.SendMessageInput{
		ToUserID: ev.ToUserID,
		Text:     ev.Text,
	})
	if err != nil {
		h.l.Warnf(ctx, "chat.ws.handlePrivateMessage: %v", err)
		c.sendError(err.Error())
		return
	}

	event, err := marshalEvent(eventNewPrivateMessage, newMessagePayload(m))
	if err != nil {
		h.l.Errorf(ctx, "chat.ws.handlePrivateMessage: marshal: %v", err)
		return
	}

	h.hub.SendToUser(ctx, ev.ToUserID, event)
	h.hub.SendToUser(ctx, c.userID, event)
}

// handleTyping relays a typing indicator without persistence.
func (h *handler) handleTyping(ctx context.Context, c *client, ev inboundEvent) {
	if ev.ToUserID == "" || ev.ToUserID == c.userID {
		return
	}

	event, err := marshalEvent(eventUserTyping, typingPayload{
		FromUserID:   c.userID,
		FromUsername: c.username,
	})
	if err != nil {
		h.l.Errorf(ctx, "chat.ws.handleTyping: marshal: %v", err)
		return
	}

	h.hub.SendToUser(ctx, ev.ToUserID, event)
}
