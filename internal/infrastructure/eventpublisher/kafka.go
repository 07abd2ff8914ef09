package eventpublisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/iho/gobilling/internal/domain"
)

// KafkaPublisher publishes ledger events to a Kafka topic, retrying
// transient write failures with exponential backoff.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger

	initialInterval time.Duration
	maxElapsedTime  time.Duration
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger zerolog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		logger:          logger,
		initialInterval: 100 * time.Millisecond,
		maxElapsedTime:  10 * time.Second,
	}
}

// Publish writes the event to Kafka, keyed by account so per-account
// ordering survives partitioning.
func (p *KafkaPublisher) Publish(ctx context.Context, event *domain.LedgerEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initialInterval
	b.MaxElapsedTime = p.maxElapsedTime

	attempt := 0

	return backoff.Retry(func() error {
		err := p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.AccountID),
			Value: data,
		})
		if err == nil {
			return nil
		}

		attempt++
		p.logger.Warn().
			Err(err).
			Str("event_id", event.ID).
			Int("attempt", attempt).
			Msg("kafka write failed, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}

// Close closes the underlying Kafka writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
