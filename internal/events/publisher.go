package events

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message is one domain event ready for a broker.
type Message struct {
	Topic         string
	Key           string
	EventType     string
	AggregateType string
	Payload       []byte
}

// NewMessage marshals event as the JSON payload of a message.
func NewMessage(topic, key, eventType, aggregateType string, event any) (Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	return Message{
		Topic:         topic,
		Key:           key,
		EventType:     eventType,
		AggregateType: aggregateType,
		Payload:       payload,
	}, nil
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

type noopPublisher struct{}

// Noop drops every message. It is the default when no broker is configured.
func Noop() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, Message) error { return nil }
