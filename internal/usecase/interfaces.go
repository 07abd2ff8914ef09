package usecase

import (
	"context"

	"github.com/iho/gobilling/internal/domain"
)

// EventPublisher delivers ledger events to an external system.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.LedgerEvent) error
}

// IDGenerator generates unique event IDs.
type IDGenerator interface {
	Generate() string
}
