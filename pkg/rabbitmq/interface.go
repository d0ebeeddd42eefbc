package rabbitmq

import "context"

// IConnection is a RabbitMQ connection that can open channels.
type IConnection interface {
	Channel() (IChannel, error)
	IsReady() bool
	Close()
}

// IChannel publishes and consumes messages on a fanout exchange.
// One channel per goroutine; channels are not safe for concurrent use.
type IChannel interface {
	DeclareFanout(exchange string) error
	PublishFanout(ctx context.Context, exchange string, body []byte) error
	ConsumeFanout(ctx context.Context, exchange string) (<-chan []byte, error)
	Close() error
}

// Connect dials RabbitMQ and returns a connection.
func Connect(url string) (IConnection, error) {
	return newConnection(url)
}
