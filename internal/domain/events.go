package domain

// Event types
const (
	EventTypeAccountCreated      = "account.created"
	EventTypeTransactionRecorded = "transaction.recorded"
	EventTypePaymentExecuted     = "payment.executed"
	EventTypePaymentSkipped      = "payment.skipped"
	EventTypePaymentCancelled    = "payment.cancelled"
)

// LedgerEvent is the envelope handed to event publishers.
type LedgerEvent struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	AccountID string         `json:"account_id"`
	Timestamp int64          `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}
