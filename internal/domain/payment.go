package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the state of a scheduled payment. Pending payments move to
// executed or skipped exactly once; cancellation removes the entry instead of
// storing a terminal state.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusExecuted PaymentStatus = "executed"
	PaymentStatusSkipped  PaymentStatus = "skipped"
)

// Payment is a scheduled money movement. Amount is a positive magnitude
// subtracted from the balance on execution. IDs are sequential per account.
type Payment struct {
	ID          int
	Status      PaymentStatus
	Amount      decimal.Decimal
	ScheduledAt int64
	ExecutedAt  *int64
}

// Name returns the external payment identifier, e.g. "payment3".
func (p *Payment) Name() string {
	return fmt.Sprintf("payment%d", p.ID)
}

// Due reports whether the payment should be settled at the given timestamp.
func (p *Payment) Due(now int64) bool {
	return p.Status == PaymentStatusPending && p.ScheduledAt <= now
}
