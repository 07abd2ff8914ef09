package usecase

import (
	"errors"
	"testing"

	"github.com/iho/gobilling/internal/domain"
)

func TestStore_CreateAccount_Idempotent(t *testing.T) {
	store := NewStore()

	first := store.CreateAccount("A", dec(100))
	second := store.CreateAccount("A", dec(500))

	if first != second {
		t.Error("expected second creation to return the existing account")
	}
	if !second.Balance.Equal(dec(100)) {
		t.Errorf("expected balance 100 to survive re-creation, got %s", second.Balance)
	}
}

func TestStore_GetAccount_Missing(t *testing.T) {
	store := NewStore()

	_, err := store.GetAccount("ghost")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestStore_AccountIDs_CreationOrder(t *testing.T) {
	store := NewStore()
	store.CreateAccount("C", dec(0))
	store.CreateAccount("A", dec(0))
	store.CreateAccount("B", dec(0))
	store.CreateAccount("A", dec(0)) // duplicate, must not reorder

	ids := store.AccountIDs()
	expected := []string{"C", "A", "B"}
	if len(ids) != len(expected) {
		t.Fatalf("expected %d ids, got %d", len(expected), len(ids))
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Fatalf("expected order %v, got %v", expected, ids)
		}
	}
}

func TestStore_Outgoing(t *testing.T) {
	store := NewStore()
	store.CreateAccount("A", dec(100))

	if !store.Outgoing("A").IsZero() {
		t.Error("expected zero outgoing for account that never spent")
	}

	store.AddOutgoing("A", dec(30))
	store.AddOutgoing("A", dec(20))

	if !store.Outgoing("A").Equal(dec(50)) {
		t.Errorf("expected outgoing 50, got %s", store.Outgoing("A"))
	}

	spenders := store.Spenders()
	if len(spenders) != 1 {
		t.Fatalf("expected 1 spender entry, got %d", len(spenders))
	}
	if spenders[0].AccountID != "A" || !spenders[0].Outgoing.Equal(dec(50)) {
		t.Errorf("unexpected spender entry: %+v", spenders[0])
	}
}
