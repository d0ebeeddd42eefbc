package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"board-srv/internal/model"
	"board-srv/internal/stats"
	"board-srv/pkg/log"
	"board-srv/pkg/redis"
)

// activityHandler folds activity events into the daily Redis counters the
// dashboard reads. Counters track creations only; deleting a post later in
// the day does not take it back out of "posts today".
type activityHandler struct {
	l     log.Logger
	redis redis.IRedis
}

func newActivityHandler(l log.Logger, rd redis.IRedis) *activityHandler {
	return &activityHandler{l: l, redis: rd}
}

// Setup implements sarama.ConsumerGroupHandler.
func (h *activityHandler) Setup(sarama.ConsumerGroupSession) error { return nil }

// Cleanup implements sarama.ConsumerGroupHandler.
func (h *activityHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim processes messages from one claimed partition. Messages are
// marked even when handling fails; a malformed event would otherwise wedge
// the partition.
func (h *activityHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.handle(ctx, msg.Value); err != nil {
				h.l.Errorf(ctx, "consumer.ConsumeClaim: event at offset %d dropped: %v", msg.Offset, err)
			}
			session.MarkMessage(msg, "")
		case <-ctx.Done():
			return nil
		}
	}
}

func (h *activityHandler) handle(ctx context.Context, raw []byte) error {
	var ev model.ActivityEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return err
	}

	// The event timestamp picks the day bucket, not the processing time,
	// so replayed events land on the day they happened.
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	switch ev.Type {
	case model.EventPostCreated:
		return h.bump(ctx, stats.PostsCounterKey(at))
	case model.EventCommentCreated:
		return h.bump(ctx, stats.CommentsCounterKey(at))
	case model.EventUserRegistered, model.EventUserLogin,
		model.EventPostDeleted, model.EventCommentDeleted:
		// Audited on the stream but not counted.
		return nil
	default:
		h.l.Warnf(ctx, "consumer.handle: unknown event type %q", ev.Type)
		return nil
	}
}

// bump increments a daily counter and refreshes its expiry.
func (h *activityHandler) bump(ctx context.Context, key string) error {
	if _, err := h.redis.Incr(ctx, key); err != nil {
		return err
	}
	if err := h.redis.Expire(ctx, key, stats.CounterTTL); err != nil {
		h.l.Warnf(ctx, "consumer.bump: expire %s: %v", key, err)
	}
	return nil
}
