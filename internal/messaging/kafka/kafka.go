package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/messaging"
)

type kafkaPublisher struct {
	writer *kafkaGo.Writer
}

// NewPublisher creates a Kafka publisher for a single topic.
//
// Writes are asynchronous so a slow or unreachable broker never delays an
// HTTP response; delivery failures are only logged.
func NewPublisher(brokers []string, topic string) messaging.Publisher {
	return &kafkaPublisher{writer: newWriter(brokers, topic)}
}

func newWriter(brokers []string, topic string) *kafkaGo.Writer {
	return &kafkaGo.Writer{
		Addr:        kafkaGo.TCP(brokers...),
		Topic:       topic,
		Balancer:    &kafkaGo.Hash{},
		Async:       true,
		MaxAttempts: 1,
		Completion: func(messages []kafkaGo.Message, err error) {
			if err != nil {
				slog.Error("Failed to deliver events", "topic", topic, "count", len(messages), "err", err)
			}
		},
	}
}

func (k *kafkaPublisher) PublishEvent(ctx context.Context, key string, event any) error {
	msg, err := newMessage(key, event)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, msg)
}

// newMessage encodes event as JSON. Domain events also carry their type in
// an event_type header so consumers can route without decoding the body.
func newMessage(key string, event any) (kafkaGo.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
	}
	if e, ok := event.(entity.Event); ok {
		msg.Headers = append(msg.Headers, kafkaGo.Header{Key: "event_type", Value: []byte(e.EventType())})
	}
	return msg, nil
}

// Close flushes pending messages.
func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}
