package eventpublisher

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/iho/gobilling/internal/domain"
)

// LogPublisher is a publisher that writes ledger events to the log. It is
// the default sink for batch replays, where the event log itself is the
// source of truth and no broker is configured.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(ctx context.Context, event *domain.LedgerEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	p.logger.Info().
		Str("event_id", event.ID).
		Str("event_type", event.Type).
		Str("account_id", event.AccountID).
		Int64("timestamp", event.Timestamp).
		RawJSON("payload", payload).
		Msg("ledger event published")

	return nil
}
