package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeclareFanout declares a durable fanout exchange.
func (c *channelImpl) DeclareFanout(exchange string) error {
	if err := c.ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq: declare exchange %q: %w", exchange, err)
	}
	return nil
}

// PublishFanout publishes a message to a fanout exchange.
func (c *channelImpl) PublishFanout(ctx context.Context, exchange string, body []byte) error {
	err := c.ch.PublishWithContext(ctx, exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq: publish to %q: %w", exchange, err)
	}
	return nil
}

// ConsumeFanout binds an exclusive queue to a fanout exchange and streams
// message bodies until the context is cancelled.
func (c *channelImpl) ConsumeFanout(ctx context.Context, exchange string) (<-chan []byte, error) {
	q, err := c.ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: declare queue: %w", err)
	}
	if err := c.ch.QueueBind(q.Name, "", exchange, false, nil); err != nil {
		return nil, fmt.Errorf("rabbitmq: bind queue: %w", err)
	}

	deliveries, err := c.ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: consume: %w", err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				select {
				case out <- d.Body:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Close closes the channel.
func (c *channelImpl) Close() error {
	return c.ch.Close()
}
