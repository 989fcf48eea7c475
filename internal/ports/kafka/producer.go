package kafka

import (
	"context"

	"github.com/google/uuid"
)

// IKafkaProducer publishes messages to the broker.
type IKafkaProducer interface {
	// SendReportJob publishes a report job descriptor keyed by session id.
	SendReportJob(ctx context.Context, sessionID uuid.UUID) error
	// Send publishes an arbitrary message.
	Send(ctx context.Context, key string, value []byte) error
	// Close shuts the producer down.
	Close() error
}
