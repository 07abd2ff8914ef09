package domain

import "github.com/shopspring/decimal"

// SpenderEntry is one row of the top-spenders ranking.
type SpenderEntry struct {
	AccountID string
	Outgoing  decimal.Decimal
}

// AccountSummary is the read-only snapshot of a single account: balance,
// cumulative outgoing total, transactions grouped by type and payments
// grouped by status, both in insertion order within each group.
type AccountSummary struct {
	ID           string
	Balance      decimal.Decimal
	Outgoing     decimal.Decimal
	Transactions map[TransactionType][]Transaction
	Payments     map[PaymentStatus][]Payment
}

// Report is the aggregate snapshot composed after a batch of events:
// all account summaries, the top spenders, and the metadata counters.
type Report struct {
	Accounts    []*AccountSummary
	TopSpenders []SpenderEntry
	Meta        Metadata
}
