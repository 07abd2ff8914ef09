package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobilling/internal/domain"
	"github.com/iho/gobilling/internal/infrastructure/metrics"
)

// TransactionProcessor applies deposits and withdrawals and creates or
// cancels scheduled payments. Every mutating operation first asks the
// scheduler to settle due payments so new state is applied on top of a
// caught-up account.
type TransactionProcessor struct {
	store     *Store
	scheduler *PaymentScheduler
	publisher EventPublisher
	idGen     IDGenerator
	logger    zerolog.Logger
	metrics   *metrics.Metrics
}

// NewTransactionProcessor creates a new TransactionProcessor.
func NewTransactionProcessor(
	store *Store,
	scheduler *PaymentScheduler,
	publisher EventPublisher,
	idGen IDGenerator,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *TransactionProcessor {
	return &TransactionProcessor{
		store:     store,
		scheduler: scheduler,
		publisher: publisher,
		idGen:     idGen,
		logger:    logger,
		metrics:   metrics,
	}
}

// CreateAccount registers an account with its opening balance. Creating an
// existing account is a no-op, not an overwrite.
func (p *TransactionProcessor) CreateAccount(ctx context.Context, accountID string, initial decimal.Decimal) *domain.Account {
	if p.store.Has(accountID) {
		p.logger.Info().
			Str("account_id", accountID).
			Msg("account already exists, ignoring creation")
		return p.store.CreateAccount(accountID, initial)
	}

	account := p.store.CreateAccount(accountID, initial)

	if p.metrics != nil {
		p.metrics.AccountsCreated.Inc()
	}
	p.logger.Info().
		Str("account_id", accountID).
		Str("initial_balance", initial.String()).
		Msg("account created")
	p.emit(ctx, domain.EventTypeAccountCreated, accountID, 0, map[string]any{
		"initial_balance": initial.String(),
	})

	return account
}

// RecordTransaction applies an immediate deposit (amount > 0) or withdrawal
// (amount < 0). A zero amount is reported as a no-op but still recorded. A
// withdrawal that would take the balance below zero is rejected without any
// state change.
func (p *TransactionProcessor) RecordTransaction(ctx context.Context, now int64, accountID string, amount decimal.Decimal) (*domain.Transaction, error) {
	// Settle due payments first; a missing account is counted again below,
	// matching the shared failed-withdrawals counter semantics.
	_ = p.scheduler.Advance(ctx, now, accountID)

	if amount.IsZero() {
		p.logger.Info().
			Str("account_id", accountID).
			Msg("no valid amount to deposit or withdraw")
	}

	account, err := p.store.GetAccount(accountID)
	if err != nil {
		p.store.Meta().TotalFailedWithdrawals++
		if p.metrics != nil {
			p.metrics.WithdrawalsFailed.WithLabelValues(metrics.ReasonAccountMissing).Inc()
		}
		p.logger.Warn().
			Str("account_id", accountID).
			Int64("timestamp", now).
			Msg("cannot record transaction: account does not exist")
		return nil, err
	}

	txnType := domain.TransactionTypeDeposit
	if amount.IsNegative() {
		txnType = domain.TransactionTypeWithdraw
	}

	if txnType == domain.TransactionTypeWithdraw {
		magnitude := amount.Abs()
		if !account.CanWithdraw(magnitude) {
			p.store.Meta().TotalFailedWithdrawals++
			if p.metrics != nil {
				p.metrics.WithdrawalsFailed.WithLabelValues(metrics.ReasonInsufficientFunds).Inc()
			}
			p.logger.Warn().
				Str("account_id", accountID).
				Str("amount", magnitude.String()).
				Str("balance", account.Balance.String()).
				Int64("timestamp", now).
				Msg("withdrawal rejected: insufficient funds")
			return nil, domain.ErrInsufficientFunds
		}
		p.store.AddOutgoing(accountID, magnitude)
	}

	account.Balance = account.Balance.Add(amount)
	txn := domain.Transaction{Type: txnType, Amount: amount, Timestamp: now}
	account.Transactions = append(account.Transactions, txn)
	p.store.Meta().Touch(now)

	if p.metrics != nil {
		p.metrics.TransactionsRecorded.WithLabelValues(string(txnType)).Inc()
	}
	p.logger.Info().
		Str("account_id", accountID).
		Str("type", string(txnType)).
		Str("amount", amount.String()).
		Int64("timestamp", now).
		Msg("transaction recorded")
	p.emit(ctx, domain.EventTypeTransactionRecorded, accountID, now, map[string]any{
		"type":   string(txnType),
		"amount": amount.String(),
	})

	return &txn, nil
}

// SchedulePayment creates a pending payment of a positive magnitude due at
// now+delay. The payment id is max(existing)+1, so an id freed by a
// cancellation can be reissued.
func (p *TransactionProcessor) SchedulePayment(ctx context.Context, now int64, accountID string, amount decimal.Decimal, delay int64) (*domain.Payment, error) {
	_ = p.scheduler.Advance(ctx, now, accountID)

	account, err := p.store.GetAccount(accountID)
	if err != nil {
		p.logger.Warn().
			Str("account_id", accountID).
			Int64("timestamp", now).
			Msg("cannot schedule payment: account does not exist")
		return nil, err
	}

	payment := &domain.Payment{
		ID:          account.NextPaymentID(),
		Status:      domain.PaymentStatusPending,
		Amount:      amount,
		ScheduledAt: now + delay,
	}
	account.Payments[payment.ID] = payment

	if p.metrics != nil {
		p.metrics.PaymentsScheduled.Inc()
	}
	p.logger.Info().
		Str("account_id", accountID).
		Str("payment_id", payment.Name()).
		Str("amount", amount.String()).
		Int64("scheduled_at", payment.ScheduledAt).
		Msg("payment scheduled")

	return payment, nil
}

// CancelPayment removes a payment that is still pending. The account is
// caught up after the payment lookup, so a payment can flip to executed or
// skipped during the cancel attempt before the status check runs. A payment
// whose due time equals now is treated as just executed and kept even when
// the catch-up skipped it for lack of funds at that exact tick.
func (p *TransactionProcessor) CancelPayment(ctx context.Context, now int64, accountID string, paymentID int) error {
	account, err := p.store.GetAccount(accountID)
	if err != nil {
		p.store.Meta().TotalFailedWithdrawals++
		if p.metrics != nil {
			p.metrics.WithdrawalsFailed.WithLabelValues(metrics.ReasonAccountMissing).Inc()
		}
		p.logger.Warn().
			Str("account_id", accountID).
			Int64("timestamp", now).
			Msg("cannot cancel payment: account does not exist")
		return err
	}

	payment, ok := account.Payments[paymentID]
	if !ok {
		p.logger.Warn().
			Str("account_id", accountID).
			Int("payment_id", paymentID).
			Msg("no scheduled payment found")
		return domain.ErrPaymentNotFound
	}

	_ = p.scheduler.Advance(ctx, now, accountID)

	if payment.Status != domain.PaymentStatusPending {
		p.logger.Warn().
			Str("account_id", accountID).
			Str("payment_id", payment.Name()).
			Str("status", string(payment.Status)).
			Msg("unable to cancel payment in current state")
		return fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotPending, payment.Status)
	}

	if payment.ScheduledAt == now {
		p.logger.Warn().
			Str("account_id", accountID).
			Str("payment_id", payment.Name()).
			Int64("timestamp", now).
			Msg("cannot cancel payment executed at this instant")
		return domain.ErrPaymentJustExecuted
	}

	delete(account.Payments, paymentID)
	p.store.Meta().Touch(now)

	if p.metrics != nil {
		p.metrics.PaymentsCancelled.Inc()
	}
	p.logger.Info().
		Str("account_id", accountID).
		Str("payment_id", payment.Name()).
		Int64("timestamp", now).
		Msg("payment cancelled")
	p.emit(ctx, domain.EventTypePaymentCancelled, accountID, now, map[string]any{
		"payment_id": payment.Name(),
		"amount":     payment.Amount.String(),
	})

	return nil
}

func (p *TransactionProcessor) emit(ctx context.Context, eventType, accountID string, now int64, payload map[string]any) {
	if p.publisher == nil {
		return
	}

	event := &domain.LedgerEvent{
		ID:        p.idGen.Generate(),
		Type:      eventType,
		AccountID: accountID,
		Timestamp: now,
		Payload:   payload,
	}

	if err := p.publisher.Publish(ctx, event); err != nil {
		if p.metrics != nil {
			p.metrics.EventPublishErrors.Inc()
		}
		p.logger.Error().Err(err).
			Str("event_id", event.ID).
			Str("event_type", eventType).
			Msg("failed to publish ledger event")
		return
	}

	if p.metrics != nil {
		p.metrics.EventsPublished.WithLabelValues(eventType).Inc()
	}
}
