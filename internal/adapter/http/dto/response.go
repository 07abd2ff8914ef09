package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gobilling/internal/domain"
)

// SpenderResponse is one row of the top-spenders ranking.
type SpenderResponse struct {
	AccountID string          `json:"account_id"`
	Outgoing  decimal.Decimal `json:"outgoing"`
}

// SpendersFromDomain converts spender entries to responses.
func SpendersFromDomain(entries []domain.SpenderEntry) []SpenderResponse {
	result := make([]SpenderResponse, len(entries))
	for i, e := range entries {
		result[i] = SpenderResponse{AccountID: e.AccountID, Outgoing: e.Outgoing}
	}
	return result
}

// TransactionResponse represents an applied transaction. The type is carried
// by the grouping key, not the entry itself.
type TransactionResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Timestamp int64           `json:"timestamp"`
}

// PaymentResponse represents a scheduled payment under its external id.
type PaymentResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	ScheduledAt int64           `json:"scheduled_at"`
	ExecutedAt  *int64          `json:"executed_at,omitempty"`
}

// AccountSummaryResponse represents one account snapshot. Empty groups are
// omitted rather than serialized as empty objects.
type AccountSummaryResponse struct {
	ID            string                           `json:"id"`
	Balance       decimal.Decimal                  `json:"balance"`
	Outgoing      decimal.Decimal                  `json:"outgoing"`
	Transactions  map[string][]TransactionResponse `json:"transactions,omitempty"`
	PaymentStatus map[string][]PaymentResponse     `json:"payment_status,omitempty"`
}

// SummaryFromDomain converts an account summary to a response.
func SummaryFromDomain(s *domain.AccountSummary) *AccountSummaryResponse {
	resp := &AccountSummaryResponse{
		ID:       s.ID,
		Balance:  s.Balance,
		Outgoing: s.Outgoing,
	}

	if len(s.Transactions) > 0 {
		resp.Transactions = make(map[string][]TransactionResponse, len(s.Transactions))
		for txnType, txns := range s.Transactions {
			group := make([]TransactionResponse, len(txns))
			for i, txn := range txns {
				group[i] = TransactionResponse{Amount: txn.Amount, Timestamp: txn.Timestamp}
			}
			resp.Transactions[string(txnType)] = group
		}
	}

	if len(s.Payments) > 0 {
		resp.PaymentStatus = make(map[string][]PaymentResponse, len(s.Payments))
		for status, payments := range s.Payments {
			group := make([]PaymentResponse, len(payments))
			for i, p := range payments {
				group[i] = PaymentResponse{
					ID:          p.Name(),
					Amount:      p.Amount,
					ScheduledAt: p.ScheduledAt,
					ExecutedAt:  p.ExecutedAt,
				}
			}
			resp.PaymentStatus[string(status)] = group
		}
	}

	return resp
}

// MetadataResponse represents the global counters.
type MetadataResponse struct {
	TotalPaymentsExecuted  int64  `json:"total_payments_executed"`
	TotalPaymentsFailed    int64  `json:"total_payments_failed"`
	TotalFailedWithdrawals int64  `json:"total_failed_withdrawals"`
	TimestampLastProcessed *int64 `json:"timestamp_last_processed"`
}

// MetadataFromDomain converts metadata to a response.
func MetadataFromDomain(m domain.Metadata) MetadataResponse {
	return MetadataResponse{
		TotalPaymentsExecuted:  m.TotalPaymentsExecuted,
		TotalPaymentsFailed:    m.TotalPaymentsFailed,
		TotalFailedWithdrawals: m.TotalFailedWithdrawals,
		TimestampLastProcessed: m.TimestampLastProcessed,
	}
}

// ReportResponse is the full structured report.
type ReportResponse struct {
	Accounts    []*AccountSummaryResponse `json:"accounts"`
	TopSpenders []SpenderResponse         `json:"top_spenders"`
	Meta        MetadataResponse          `json:"meta"`
}

// ReportFromDomain converts a report to a response.
func ReportFromDomain(r *domain.Report) *ReportResponse {
	accounts := make([]*AccountSummaryResponse, len(r.Accounts))
	for i, s := range r.Accounts {
		accounts[i] = SummaryFromDomain(s)
	}
	return &ReportResponse{
		Accounts:    accounts,
		TopSpenders: SpendersFromDomain(r.TopSpenders),
		Meta:        MetadataFromDomain(r.Meta),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
