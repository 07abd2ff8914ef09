package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gobilling/internal/domain"
)

// Store owns the ledger state for one process: the account map, the global
// metadata counters and the per-account outgoing totals. It enforces no
// business rules beyond account existence; the scheduler and processor
// mutate balances and aggregates through the references it hands out.
type Store struct {
	accounts map[string]*domain.Account
	order    []string
	outgoing map[string]decimal.Decimal
	meta     domain.Metadata
}

// NewStore creates an empty ledger store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*domain.Account),
		outgoing: make(map[string]decimal.Decimal),
	}
}

// CreateAccount adds an account with the given opening balance. Creation is
// idempotent: an existing account is returned unchanged, never overwritten.
func (s *Store) CreateAccount(id string, initial decimal.Decimal) *domain.Account {
	if account, ok := s.accounts[id]; ok {
		return account
	}

	account := domain.NewAccount(id, initial)
	s.accounts[id] = account
	s.order = append(s.order, id)
	return account
}

// GetAccount returns the account or domain.ErrAccountNotFound.
func (s *Store) GetAccount(id string) (*domain.Account, error) {
	account, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// Has reports whether an account exists.
func (s *Store) Has(id string) bool {
	_, ok := s.accounts[id]
	return ok
}

// AccountIDs returns all account ids in creation order.
func (s *Store) AccountIDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Meta returns the mutable metadata counters.
func (s *Store) Meta() *domain.Metadata {
	return &s.meta
}

// Outgoing returns the cumulative outgoing total for an account, zero when
// the account has never spent.
func (s *Store) Outgoing(id string) decimal.Decimal {
	if total, ok := s.outgoing[id]; ok {
		return total
	}
	return decimal.Zero
}

// AddOutgoing adds a positive magnitude to an account's outgoing total.
// Called at every site that moves money out of an account, and only there;
// the total is never recomputed from transaction history.
func (s *Store) AddOutgoing(id string, amount decimal.Decimal) {
	s.outgoing[id] = s.Outgoing(id).Add(amount)
}

// Spenders returns a snapshot of all accounts with a recorded outgoing
// total, in no particular order.
func (s *Store) Spenders() []domain.SpenderEntry {
	entries := make([]domain.SpenderEntry, 0, len(s.outgoing))
	for id, total := range s.outgoing {
		entries = append(entries, domain.SpenderEntry{AccountID: id, Outgoing: total})
	}
	return entries
}
