package domain

import "github.com/shopspring/decimal"

// TransactionType classifies a completed balance movement.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
)

// Transaction is an immutable record of an applied deposit or withdrawal.
// Amount keeps the sign it was submitted with: withdrawals are negative.
type Transaction struct {
	Type      TransactionType
	Amount    decimal.Decimal
	Timestamp int64
}
