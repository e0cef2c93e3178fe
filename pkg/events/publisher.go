// Package events streams domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher sends one event keyed by key. payload is encoded as JSON.
type Publisher interface {
	Publish(ctx context.Context, key string, payload any) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes to a single topic.
type Kafka struct {
	writer messageWriter
	topic  string
	log    *zap.Logger
}

func NewKafka(brokers []string, topic string, log *zap.Logger) *Kafka {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}
	return &Kafka{
		writer: writer,
		topic:  topic,
		log:    log.With(zap.String("publisher", "kafka"), zap.String("topic", topic)),
	}
}

func (k *Kafka) Publish(ctx context.Context, key string, payload any) error {
	msg, err := newMessage(key, payload)
	if err != nil {
		return err
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		k.log.Error("Failed to publish event", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("publish %s to %s: %w", key, k.topic, err)
	}

	k.log.Debug("Event published", zap.String("key", key))
	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}

func newMessage(key string, payload any) (kafka.Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode event %s: %w", key, err)
	}
	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}, nil
}

// Noop drops every event. Used when Kafka is disabled.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
func (Noop) Close() error                               { return nil }
