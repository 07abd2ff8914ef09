package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Operations understood by the dispatcher. The set is closed: anything else
// in an event log is logged and skipped.
const (
	OpCreateAccount     = "create_account"
	OpDeposit           = "deposit"
	OpWithdraw          = "withdraw"
	OpSchedulePayment   = "schedule_payment"
	OpCancelPayment     = "cancel_payment"
	OpGetTopSpenders    = "get_top_spenders"
	OpGetAccountSummary = "get_account_summary"
	OpGenerateReport    = "generate_report"
)

// Event is one entry of the event log. Fields beyond Operation and Timestamp
// are populated per operation.
type Event struct {
	Operation string          `json:"operation"`
	Timestamp int64           `json:"timestamp"`
	AccountID string          `json:"account_id,omitempty"`
	Amount    decimal.Decimal `json:"amount,omitempty"`
	Delay     int64           `json:"delay,omitempty"`
	PaymentID string          `json:"payment_id,omitempty"`
	K         int             `json:"k,omitempty"`
}

// ParsePaymentID accepts the external "payment<n>" form as well as a bare
// numeric id.
func ParsePaymentID(raw string) (int, error) {
	trimmed := strings.TrimPrefix(raw, "payment")
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid payment id %q", raw)
	}
	return id, nil
}
