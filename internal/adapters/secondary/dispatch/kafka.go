package dispatch

import (
	"context"

	"github.com/AndreaVaz0608/skyai/internal/ports/kafka"
	"github.com/google/uuid"
)

// KafkaDispatcher enqueues report jobs through the Kafka producer
type KafkaDispatcher struct {
	producer kafka.IKafkaProducer
}

// NewKafkaDispatcher wraps a producer as a dispatcher
func NewKafkaDispatcher(producer kafka.IKafkaProducer) *KafkaDispatcher {
	return &KafkaDispatcher{producer: producer}
}

// DispatchReportJob publishes the session id to the job topic
func (d *KafkaDispatcher) DispatchReportJob(ctx context.Context, sessionID uuid.UUID) error {
	return d.producer.SendReportJob(ctx, sessionID)
}

// Close closes the underlying producer
func (d *KafkaDispatcher) Close() error {
	return d.producer.Close()
}
