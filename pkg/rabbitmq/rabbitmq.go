package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

func newConnection(url string) (*connectionImpl, error) {
	if url == "" {
		return nil, fmt.Errorf("rabbitmq: url is required")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial failed: %w", err)
	}
	return &connectionImpl{conn: conn}, nil
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	return &channelImpl{ch: ch}, nil
}

func (c *connectionImpl) IsReady() bool {
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connectionImpl) Close() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
