package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	HeaderMessageID = "message-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

var ErrProducerClosed = errors.New("producer is closed")

// Producer publishes JSON-encoded domain notifications. Messages are
// keyed so that notifications for the same record stay ordered within a
// partition.
type Producer struct {
	writer *kafka.Writer
	source string
	closed bool
}

func NewProducer(brokers []string, topic, source string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
	}

	return &Producer{writer: writer, source: source}, nil
}

func (p *Producer) Publish(ctx context.Context, eventType, key string, value any) error {
	if p.closed {
		return ErrProducerClosed
	}
	if key == "" {
		return errors.New("message key cannot be empty")
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode message payload: %w", err)
	}

	now := time.Now().UTC()
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  now,
		Headers: []kafka.Header{
			{Key: HeaderMessageID, Value: []byte(uuid.NewString())},
			{Key: HeaderEventType, Value: []byte(eventType)},
			{Key: HeaderSource, Value: []byte(p.source)},
			{Key: HeaderTimestamp, Value: []byte(now.Format(time.RFC3339))},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *Producer) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
