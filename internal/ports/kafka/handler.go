package kafka

import "context"

// MessageHandler processes messages consumed from Kafka
type MessageHandler interface {
	HandleMessage(ctx context.Context, key string, value []byte) error
}
