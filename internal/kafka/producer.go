package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

const (
	headerEventType = "event-type"
	writeTimeout    = 5 * time.Second
)

// typed is implemented by payloads that carry their own event type, which is
// copied into a message header so consumers can route without decoding.
type typed interface {
	EventType() string
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
	logger  zerolog.Logger
}

// NewProducer builds a synchronous writer. Messages are hashed by key, so events
// for one booking land on one partition in order.
func NewProducer(brokers []string, logger zerolog.Logger) *Producer {
	return &Producer{
		brokers: brokers,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			BatchTimeout:           50 * time.Millisecond,
			WriteTimeout:           writeTimeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		logger: logger.With().Str("component", "kafka_producer").Logger(),
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", topic, err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Time:  time.Now().UTC(),
	}
	if t, ok := payload.(typed); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: headerEventType, Value: []byte(t.EventType())})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write to %s: %w", topic, err)
	}
	p.logger.Debug().Str("topic", topic).Str("key", key).Int("bytes", len(value)).Msg("published")
	return nil
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// CheckConnection asks the first reachable broker for partition metadata.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}

	var errs []error
	for _, broker := range p.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			errs = append(errs, fmt.Errorf("dial %s: %w", broker, err))
			continue
		}
		partitions, err := conn.ReadPartitions()
		_ = conn.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("read partitions from %s: %w", broker, err))
			continue
		}
		p.logger.Info().Str("broker", broker).Int("partitions", len(partitions)).Msg("connected to kafka")
		return nil
	}
	return errors.Join(errs...)
}
