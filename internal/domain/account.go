package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Account is a ledger account: its balance, the chronological record of
// applied transactions, and its scheduled payments keyed by payment id.
type Account struct {
	ID           string
	Balance      decimal.Decimal
	Transactions []Transaction
	Payments     map[int]*Payment
}

// NewAccount creates an account with the given opening balance.
func NewAccount(id string, initial decimal.Decimal) *Account {
	return &Account{
		ID:       id,
		Balance:  initial,
		Payments: make(map[int]*Payment),
	}
}

// NextPaymentID allocates the next payment id as max(existing)+1. Because
// cancellation deletes entries, an id freed by cancellation can be reissued.
func (a *Account) NextPaymentID() int {
	max := 0
	for id := range a.Payments {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// PaymentIDs returns the account's payment ids in ascending order.
func (a *Account) PaymentIDs() []int {
	ids := make([]int, 0, len(a.Payments))
	for id := range a.Payments {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// CanWithdraw reports whether the balance covers the given magnitude.
func (a *Account) CanWithdraw(magnitude decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(magnitude)
}
