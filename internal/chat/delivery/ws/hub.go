package ws

import (
	"context"
	"encoding/json"
	"sync"

	"board-srv/pkg/log"
	"board-srv/pkg/rabbitmq"
	"board-srv/pkg/redis"
)

// PresenceKey is the Redis set of user IDs with at least one open
// websocket connection, across all API instances. The admin dashboard
// reads its cardinality.
const PresenceKey = "board:presence"

// Hub tracks local websocket connections and relays events across API
// instances through a RabbitMQ fanout exchange. Delivery always goes
// through the exchange, own instance included, so every instance runs the
// same code path.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{} // userID -> connections

	conn     rabbitmq.IConnection
	pubMu    sync.Mutex
	pubCh    rabbitmq.IChannel
	exchange string
	redis    redis.IRedis
	l        log.Logger
}

// NewHub creates a hub bound to a fanout exchange. AMQP channels are not
// safe for concurrent use, so the hub keeps one mutex-guarded channel for
// publishing and Run opens its own for consuming.
func NewHub(conn rabbitmq.IConnection, exchange string, rd redis.IRedis, l log.Logger) (*Hub, error) {
	pubCh, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := pubCh.DeclareFanout(exchange); err != nil {
		pubCh.Close()
		return nil, err
	}
	return &Hub{
		clients:  make(map[string]map[*client]struct{}),
		conn:     conn,
		pubCh:    pubCh,
		exchange: exchange,
		redis:    rd,
		l:        l,
	}, nil
}

// Run consumes the fanout exchange and delivers frames to local
// connections until the context is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	ch, err := h.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	frames, err := ch.ConsumeFanout(ctx, h.exchange)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case body, ok := <-frames:
			if !ok {
				return nil
			}
			var env envelope
			if err := json.Unmarshal(body, &env); err != nil {
				h.l.Warnf(ctx, "chat.ws.Hub.Run: bad frame: %v", err)
				continue
			}
			h.deliverLocal(env)
		}
	}
}

// SendToUser relays an event to all of a user's connections, on every
// instance.
func (h *Hub) SendToUser(ctx context.Context, userID string, event []byte) {
	h.publish(ctx, envelope{TargetUserID: userID, Event: event})
}

// Broadcast relays an event to every connected client.
func (h *Hub) Broadcast(ctx context.Context, event []byte) {
	h.publish(ctx, envelope{Event: event})
}

func (h *Hub) publish(ctx context.Context, env envelope) {
	body, err := json.Marshal(env)
	if err != nil {
		h.l.Errorf(ctx, "chat.ws.Hub.publish: marshal: %v", err)
		return
	}
	h.pubMu.Lock()
	err = h.pubCh.PublishFanout(ctx, h.exchange, body)
	h.pubMu.Unlock()
	if err != nil {
		h.l.Errorf(ctx, "chat.ws.Hub.publish: %v", err)
	}
}

func (h *Hub) deliverLocal(env envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if env.TargetUserID != "" {
		for c := range h.clients[env.TargetUserID] {
			c.enqueue(env.Event)
		}
		return
	}
	for _, conns := range h.clients {
		for c := range conns {
			c.enqueue(env.Event)
		}
	}
}

// attach registers a connection and marks the user present. Returns true
// when this is the user's first open connection.
func (h *Hub) attach(ctx context.Context, c *client) bool {
	h.mu.Lock()
	conns, existed := h.clients[c.userID]
	if conns == nil {
		conns = make(map[*client]struct{})
		h.clients[c.userID] = conns
	}
	conns[c] = struct{}{}
	h.mu.Unlock()

	if !existed {
		if err := h.redis.SAdd(ctx, PresenceKey, c.userID); err != nil {
			h.l.Warnf(ctx, "chat.ws.Hub.attach: presence add: %v", err)
		}
	}
	return !existed
}

// detach unregisters a connection. Returns true when the user has no
// connections left.
func (h *Hub) detach(ctx context.Context, c *client) bool {
	h.mu.Lock()
	conns := h.clients[c.userID]
	delete(conns, c)
	gone := len(conns) == 0
	if gone {
		delete(h.clients, c.userID)
	}
	h.mu.Unlock()

	if gone {
		if err := h.redis.SRem(ctx, PresenceKey, c.userID); err != nil {
			h.l.Warnf(ctx, "chat.ws.Hub.detach: presence remove: %v", err)
		}
	}
	return gone
}

// PresenceCount returns the number of distinct users connected across all
// instances.
func (h *Hub) PresenceCount(ctx context.Context) (int64, error) {
	return h.redis.SCard(ctx, PresenceKey)
}

// broadcastUserCount pushes the current presence figure to everyone.
func (h *Hub) broadcastUserCount(ctx context.Context) {
	count, err := h.PresenceCount(ctx)
	if err != nil {
		h.l.Warnf(ctx, "chat.ws.Hub.broadcastUserCount: %v", err)
		return
	}
	event, err := marshalEvent(eventUserCount, userCountPayload{Count: count})
	if err != nil {
		h.l.Errorf(ctx, "chat.ws.Hub.broadcastUserCount: marshal: %v", err)
		return
	}
	h.Broadcast(ctx, event)
}
