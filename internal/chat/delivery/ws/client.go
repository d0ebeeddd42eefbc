package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"board-srv/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendQueueSize  = 64
)

type client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	userID   string
	username string
}

func newClient(hub *Hub, conn *websocket.Conn, sc model.Scope) *client {
	return &client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendQueueSize),
		userID:   sc.UserID,
		username: sc.Username,
	}
}

// enqueue hands an event to the write pump. A client that cannot keep up
// gets dropped rather than blocking the hub.
func (c *client) enqueue(event []byte) {
	select {
	case c.send <- event:
	default:
		_ = c.conn.Close()
	}
}

// readPump consumes inbound events until the connection dies.
func (c *client) readPump(ctx context.Context, h *handler) {
	defer func() {
		if c.hub.detach(ctx, c) {
			c.hub.broadcastUserCount(ctx)
		}
		_ = c.conn.Close()
		close(c.send)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "chat.ws.client.readPump: %v", err)
			}
			return
		}

		var ev inboundEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			c.sendError("malformed event")
			continue
		}

		switch ev.Type {
		case eventPrivateMessage:
			h.handlePrivateMessage(ctx, c, ev)
		case eventTypingPrivate:
			h.handleTyping(ctx, c, ev)
		default:
			c.sendError("unknown event type")
		}
	}
}

// writePump pushes queued events and pings until the connection dies.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, event); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) sendError(msg string) {
	body, err := json.Marshal(outboundEvent{Type: "error", Error: msg})
	if err != nil {
		return
	}
	c.enqueue(body)
}

func (c *client) scope() model.Scope {
	return model.Scope{UserID: c.userID, Username: c.username}
}
