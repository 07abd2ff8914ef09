package usecase

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/iho/gobilling/internal/domain"
	"github.com/iho/gobilling/internal/infrastructure/metrics"
)

// Reporting serves the read-only queries. Reads still trigger catch-up:
// a pending payment can change an outgoing total or a balance the instant
// it falls due, so every query advances the accounts it reads first.
type Reporting struct {
	store     *Store
	scheduler *PaymentScheduler
	logger    zerolog.Logger
	metrics   *metrics.Metrics
	topK      int
}

// NewReporting creates a new Reporting layer. topK is the number of top
// spenders embedded in the structured report.
func NewReporting(
	store *Store,
	scheduler *PaymentScheduler,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
	topK int,
) *Reporting {
	return &Reporting{
		store:     store,
		scheduler: scheduler,
		logger:    logger,
		metrics:   metrics,
		topK:      topK,
	}
}

// TopSpenders returns the k accounts with the largest outgoing totals,
// ties broken by ascending account id. k <= 0 yields an empty slice.
func (r *Reporting) TopSpenders(ctx context.Context, now int64, k int) []domain.SpenderEntry {
	for _, id := range r.store.AccountIDs() {
		_ = r.scheduler.Advance(ctx, now, id)
	}

	entries := r.store.Spenders()
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Outgoing.Equal(entries[j].Outgoing) {
			return entries[i].Outgoing.GreaterThan(entries[j].Outgoing)
		}
		return entries[i].AccountID < entries[j].AccountID
	})

	if k <= 0 {
		return []domain.SpenderEntry{}
	}
	if k < len(entries) {
		entries = entries[:k]
	}
	return entries
}

// AccountSummary returns the snapshot of one account: balance, outgoing
// total, transactions grouped by type and payments grouped by status, each
// group in insertion order. Empty groups are left nil.
func (r *Reporting) AccountSummary(ctx context.Context, now int64, accountID string) (*domain.AccountSummary, error) {
	if err := r.scheduler.Advance(ctx, now, accountID); err != nil {
		r.logger.Warn().
			Str("account_id", accountID).
			Int64("timestamp", now).
			Msg("cannot build account summary")
		return nil, err
	}

	account, err := r.store.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	summary := &domain.AccountSummary{
		ID:       accountID,
		Balance:  account.Balance,
		Outgoing: r.store.Outgoing(accountID),
	}

	if len(account.Transactions) > 0 {
		summary.Transactions = make(map[domain.TransactionType][]domain.Transaction)
		for _, txn := range account.Transactions {
			summary.Transactions[txn.Type] = append(summary.Transactions[txn.Type], txn)
		}
	}

	if len(account.Payments) > 0 {
		summary.Payments = make(map[domain.PaymentStatus][]domain.Payment)
		for _, id := range account.PaymentIDs() {
			payment := account.Payments[id]
			summary.Payments[payment.Status] = append(summary.Payments[payment.Status], *payment)
		}
	}

	return summary, nil
}

// StructuredReport composes all account summaries in creation order, the
// top spenders and a snapshot of the metadata counters. It is the terminal
// query after a batch of events.
func (r *Reporting) StructuredReport(ctx context.Context, now int64) *domain.Report {
	report := &domain.Report{}

	for _, id := range r.store.AccountIDs() {
		summary, err := r.AccountSummary(ctx, now, id)
		if err != nil {
			continue
		}
		report.Accounts = append(report.Accounts, summary)
	}

	report.TopSpenders = r.TopSpenders(ctx, now, r.topK)
	report.Meta = *r.store.Meta()

	if r.metrics != nil {
		r.metrics.ReportsGenerated.Inc()
	}
	r.logger.Info().
		Int64("timestamp", now).
		Int("accounts", len(report.Accounts)).
		Msg("structured report generated")

	return report
}

// LastProcessed returns the timestamp of the last successfully processed
// operation, or zero when nothing has been processed yet.
func (r *Reporting) LastProcessed() int64 {
	if ts := r.store.Meta().TimestampLastProcessed; ts != nil {
		return *ts
	}
	return 0
}
