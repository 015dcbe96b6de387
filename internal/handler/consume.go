package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/model"
)

type recordAudit func(ctx context.Context, ev model.AuditEvent) error

type Consumer struct {
	recordHandler recordAudit
	log           *zap.Logger
	ready         chan bool
}

func NewConsumer(record recordAudit, log *zap.Logger) *Consumer {
	return &Consumer{
		recordHandler: record,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var ev model.AuditEvent
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("unmarshal audit event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordHandler(context.Background(), ev); err != nil {
				consumer.log.Error("consumer.recordHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
