package dispatch

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobilling/internal/domain"
)

// Ledger is the mutating surface the dispatcher drives.
type Ledger interface {
	CreateAccount(ctx context.Context, accountID string, initial decimal.Decimal) *domain.Account
	RecordTransaction(ctx context.Context, now int64, accountID string, amount decimal.Decimal) (*domain.Transaction, error)
	SchedulePayment(ctx context.Context, now int64, accountID string, amount decimal.Decimal, delay int64) (*domain.Payment, error)
	CancelPayment(ctx context.Context, now int64, accountID string, paymentID int) error
}

// Reporter is the query surface the dispatcher drives.
type Reporter interface {
	TopSpenders(ctx context.Context, now int64, k int) []domain.SpenderEntry
	AccountSummary(ctx context.Context, now int64, accountID string) (*domain.AccountSummary, error)
	StructuredReport(ctx context.Context, now int64) *domain.Report
}

// Dispatcher routes decoded events to the ledger and reporting surfaces.
// Creation events carry only the account id; the opening balance comes from
// the seed table loaded alongside the event log.
type Dispatcher struct {
	ledger   Ledger
	reporter Reporter
	seeds    map[string]decimal.Decimal
	logger   zerolog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(ledger Ledger, reporter Reporter, seeds map[string]decimal.Decimal, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		ledger:   ledger,
		reporter: reporter,
		seeds:    seeds,
		logger:   logger,
	}
}

// Dispatch applies one event. Query operations return their result; mutating
// operations return nil. Operation failures come back as errors for the
// caller to log, they never stop a replay.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) (any, error) {
	switch event.Operation {
	case OpCreateAccount:
		initial, ok := d.seeds[event.AccountID]
		if !ok {
			d.logger.Warn().
				Str("account_id", event.AccountID).
				Msg("no seed balance for account, skipping creation")
			return nil, nil
		}
		d.ledger.CreateAccount(ctx, event.AccountID, initial)
		return nil, nil

	case OpDeposit:
		_, err := d.ledger.RecordTransaction(ctx, event.Timestamp, event.AccountID, event.Amount)
		return nil, err

	case OpWithdraw:
		_, err := d.ledger.RecordTransaction(ctx, event.Timestamp, event.AccountID, event.Amount.Neg())
		return nil, err

	case OpSchedulePayment:
		_, err := d.ledger.SchedulePayment(ctx, event.Timestamp, event.AccountID, event.Amount, event.Delay)
		return nil, err

	case OpCancelPayment:
		paymentID, err := ParsePaymentID(event.PaymentID)
		if err != nil {
			// An unparseable id can never match a scheduled payment.
			d.logger.Warn().
				Str("account_id", event.AccountID).
				Str("payment_id", event.PaymentID).
				Msg("malformed payment id in cancel event")
			return nil, domain.ErrPaymentNotFound
		}
		return nil, d.ledger.CancelPayment(ctx, event.Timestamp, event.AccountID, paymentID)

	case OpGetTopSpenders:
		return d.reporter.TopSpenders(ctx, event.Timestamp, event.K), nil

	case OpGetAccountSummary:
		return d.reporter.AccountSummary(ctx, event.Timestamp, event.AccountID)

	case OpGenerateReport:
		return d.reporter.StructuredReport(ctx, event.Timestamp), nil

	default:
		d.logger.Warn().
			Str("operation", event.Operation).
			Msg("unknown operation, skipping event")
		return nil, nil
	}
}

// Replay feeds the whole event log through Dispatch in order. Results of
// query operations are handed to sink when it is non-nil. Errors are logged
// and the replay continues.
func (d *Dispatcher) Replay(ctx context.Context, events []Event, sink func(any)) {
	for i, event := range events {
		result, err := d.Dispatch(ctx, event)
		if err != nil {
			d.logger.Warn().Err(err).
				Int("event_index", i).
				Str("operation", event.Operation).
				Str("account_id", event.AccountID).
				Msg("event failed")
			continue
		}
		if result != nil && sink != nil {
			sink(result)
		}
	}
	d.logger.Info().Int("events", len(events)).Msg("replay finished")
}
