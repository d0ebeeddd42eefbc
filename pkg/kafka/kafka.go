// Package kafka wraps sarama for the activity event stream: the API binary
// publishes small JSON activity records keyed by event type, and the stats
// consumer folds them into daily counters. Both sides speak one protocol
// version and announce themselves with distinct client ids so broker logs
// tell them apart.
package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerClientID identifies the API publisher to the brokers.
	ProducerClientID = "board-api"
	// ConsumerClientID identifies the stats consumer to the brokers.
	ConsumerClientID = "board-stats"

	publishRetryMax = 3
	publishTimeout  = 10 * time.Second
)

// protocolVersion is the broker protocol version both clients speak.
var protocolVersion = sarama.V2_6_0_0

// newClientConfig is the base sarama config shared by the producer and the
// consumer group.
func newClientConfig(clientID string) *sarama.Config {
	config := sarama.NewConfig()
	config.Version = protocolVersion
	config.ClientID = clientID
	return config
}
