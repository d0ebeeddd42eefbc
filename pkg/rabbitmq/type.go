package rabbitmq

import amqp "github.com/rabbitmq/amqp091-go"

// Config holds RabbitMQ configuration.
type Config struct {
	URL string
}

type connectionImpl struct {
	conn *amqp.Connection
}

type channelImpl struct {
	ch *amqp.Channel
}
