package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iho/gobilling/internal/domain"
	"github.com/iho/gobilling/internal/infrastructure/metrics"
)

// PaymentScheduler settles due pending payments for one account. Every other
// operation calls Advance first, so an account is always caught up to the
// current logical timestamp before it is observed or mutated.
type PaymentScheduler struct {
	store     *Store
	publisher EventPublisher
	idGen     IDGenerator
	logger    zerolog.Logger
	metrics   *metrics.Metrics
}

// NewPaymentScheduler creates a new PaymentScheduler.
func NewPaymentScheduler(
	store *Store,
	publisher EventPublisher,
	idGen IDGenerator,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *PaymentScheduler {
	return &PaymentScheduler{
		store:     store,
		publisher: publisher,
		idGen:     idGen,
		logger:    logger,
		metrics:   metrics,
	}
}

// Advance settles every pending payment due at or before now, in ascending
// payment-id order. Each payment is checked against the balance as it stands
// when its turn comes, so a payment executed earlier in the same call can
// starve a later one. A payment whose amount exceeds the balance is skipped
// permanently. Advancing is idempotent for a fixed now: only pending
// payments are examined, and no transition leaves executed or skipped.
func (s *PaymentScheduler) Advance(ctx context.Context, now int64, accountID string) error {
	account, err := s.store.GetAccount(accountID)
	if err != nil {
		s.store.Meta().TotalPaymentsFailed++
		if s.metrics != nil {
			s.metrics.PaymentsFailed.Inc()
		}
		s.logger.Warn().
			Str("account_id", accountID).
			Int64("timestamp", now).
			Msg("cannot process scheduled payments: account does not exist")
		return err
	}

	for _, id := range account.PaymentIDs() {
		payment := account.Payments[id]
		if !payment.Due(now) {
			continue
		}

		if payment.Amount.GreaterThan(account.Balance) {
			payment.Status = domain.PaymentStatusSkipped
			if s.metrics != nil {
				s.metrics.PaymentsSkipped.Inc()
			}
			s.logger.Info().
				Str("account_id", accountID).
				Str("payment_id", payment.Name()).
				Str("amount", payment.Amount.String()).
				Str("balance", account.Balance.String()).
				Msg("payment skipped: insufficient funds")
			s.emit(ctx, domain.EventTypePaymentSkipped, accountID, now, map[string]any{
				"payment_id": payment.Name(),
				"amount":     payment.Amount.String(),
			})
			continue
		}

		account.Balance = account.Balance.Sub(payment.Amount)
		executedAt := now
		payment.ExecutedAt = &executedAt
		payment.Status = domain.PaymentStatusExecuted

		meta := s.store.Meta()
		meta.TotalPaymentsExecuted++
		meta.Touch(now)
		s.store.AddOutgoing(accountID, payment.Amount)

		if s.metrics != nil {
			s.metrics.PaymentsExecuted.Inc()
		}
		s.logger.Info().
			Str("account_id", accountID).
			Str("payment_id", payment.Name()).
			Str("amount", payment.Amount.String()).
			Int64("executed_at", now).
			Msg("payment executed")
		s.emit(ctx, domain.EventTypePaymentExecuted, accountID, now, map[string]any{
			"payment_id":  payment.Name(),
			"amount":      payment.Amount.String(),
			"executed_at": now,
		})
	}

	return nil
}

// emit publishes a ledger event. Publishing is best effort: a sink failure
// is logged and never fails the ledger operation.
func (s *PaymentScheduler) emit(ctx context.Context, eventType, accountID string, now int64, payload map[string]any) {
	if s.publisher == nil {
		return
	}

	event := &domain.LedgerEvent{
		ID:        s.idGen.Generate(),
		Type:      eventType,
		AccountID: accountID,
		Timestamp: now,
		Payload:   payload,
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		if s.metrics != nil {
			s.metrics.EventPublishErrors.Inc()
		}
		s.logger.Error().Err(err).
			Str("event_id", event.ID).
			Str("event_type", eventType).
			Msg("failed to publish ledger event")
		return
	}

	if s.metrics != nil {
		s.metrics.EventsPublished.WithLabelValues(eventType).Inc()
	}
}
