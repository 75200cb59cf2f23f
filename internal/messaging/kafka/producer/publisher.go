package producer

import (
	"context"

	"hris-dashboard/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the slice of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type kafkaPublisher struct {
	writer MessageWriter
	logger *zap.Logger
}

func NewPublisher(writer MessageWriter, logger *zap.Logger) events.Publisher {
	if logger == nil {
		logger = zap.L()
	}
	return &kafkaPublisher{writer: writer, logger: logger.Named("kafka.producer")}
}

// NewWriter returns a writer that routes by message topic and balances by key.
func NewWriter(broker string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Balancer:               &kafkago.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, msg events.Message) error {
	if err := p.writer.WriteMessages(ctx, toKafkaMessage(msg)); err != nil {
		p.logger.Error("publish event failed",
			zap.String("event_type", msg.EventType),
			zap.String("topic", msg.Topic),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug("event published",
		zap.String("event_type", msg.EventType),
		zap.String("topic", msg.Topic),
		zap.String("key", msg.Key),
	)
	return nil
}

func toKafkaMessage(msg events.Message) kafkago.Message {
	return kafkago.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(msg.EventType)},
			{Key: "aggregate_type", Value: []byte(msg.AggregateType)},
		},
	}
}
