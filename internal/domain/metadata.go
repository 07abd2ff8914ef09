package domain

// Metadata holds the process-wide counters of one ledger instance.
// Insufficient funds and a missing account on a transaction or cancel
// operation both feed TotalFailedWithdrawals; the error kinds stay distinct
// so a future split does not change the counter semantics.
type Metadata struct {
	TotalPaymentsExecuted  int64
	TotalPaymentsFailed    int64
	TotalFailedWithdrawals int64
	TimestampLastProcessed *int64
}

// Touch records the timestamp of the last successfully processed operation.
func (m *Metadata) Touch(now int64) {
	ts := now
	m.TimestampLastProcessed = &ts
}
