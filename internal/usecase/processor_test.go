package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/gobilling/internal/domain"
)

func TestProcessor_RecordTransaction_Deposit(t *testing.T) {
	store, _, processor, _ := newTestStack()
	ctx := context.Background()

	processor.CreateAccount(ctx, "A", dec(100))

	txn, err := processor.RecordTransaction(ctx, 3, "A", dec(50))
	if err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	if txn.Type != domain.TransactionTypeDeposit {
		t.Errorf("expected deposit, got %s", txn.Type)
	}
	account, _ := store.GetAccount("A")
	if !account.Balance.Equal(dec(150)) {
		t.Errorf("expected balance 150, got %s", account.Balance)
	}
	if len(account.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(account.Transactions))
	}
	if account.Transactions[0].Timestamp != 3 {
		t.Errorf("expected timestamp 3, got %d", account.Transactions[0].Timestamp)
	}
	if ts := store.Meta().TimestampLastProcessed; ts == nil || *ts != 3 {
		t.Errorf("expected last processed 3, got %v", ts)
	}
}

func TestProcessor_RecordTransaction_Withdraw(t *testing.T) {
	store, _, processor, _ := newTestStack()
	ctx := context.Background()

	processor.CreateAccount(ctx, "A", dec(100))

	txn, err := processor.RecordTransaction(ctx, 1, "A", dec(-40))
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}

	if txn.Type != domain.TransactionTypeWithdraw {
		t.Errorf("expected withdraw, got %s", txn.Type)
	}
	if !txn.Amount.Equal(dec(-40)) {
		t.Errorf("expected recorded amount -40, got %s", txn.Amount)
	}
	account, _ := store.GetAccount("A")
	if !account.Balance.Equal(dec(60)) {
		t.Errorf("expected balance 60, got %s", account.Balance)
	}
	if !store.Outgoing("A").Equal(dec(40)) {
		t.Errorf("expected outgoing 40, got %s", store.Outgoing("A"))
	}
}

func TestProcessor_RecordTransaction_InsufficientFunds(t *testing.T) {
	store, _, processor, _ := newTestStack()
	ctx := context.Background()

	processor.CreateAccount(ctx, "A", dec(30))

	_, err := processor.RecordTransaction(ctx, 1, "A", dec(-40))
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	account, _ := store.GetAccount("A")
	if !account.Balance.Equal(dec(30)) {
		t.Errorf("expected balance unchanged at 30, got %s", account.Balance)
	}
	if len(account.Transactions) != 0 {
		t.Errorf("expected no transaction recorded, got %d", len(account.Transactions))
	}
	if store.Meta().TotalFailedWithdrawals != 1 {
		t.Errorf("expected exactly 1 failed withdrawal, got %d", store.Meta().TotalFailedWithdrawals)
	}
	if !store.Outgoing("A").IsZero() {
		t.Errorf("expected zero outgoing after rejected withdrawal, got %s", store.Outgoing("A"))
	}
}

func TestProcessor_RecordTransaction_ZeroAmountStillRecorded(t *testing.T) {
	store, _, processor, _ := newTestStack()
	ctx := context.Background()

	processor.CreateAccount(ctx, "A", dec(100))

	txn, err := processor.RecordTransaction(ctx, 2, "A", dec(0))
	if err != nil {
		t.Fatalf("zero-amount transaction failed: %v", err)
	}
	if txn.Type != domain.TransactionTypeDeposit {
		t.Errorf("expected zero amount classified as deposit, got %s", txn.Type)
	}

	account, _ := store.GetAccount("A")
	if len(account.Transactions) != 1 {
		t.Errorf("expected the no-op to be recorded, got %d transactions", len(account.Transactions))
	}
}

func TestProcessor_RecordTransaction_MissingAccount(t *testing.T) {
	store, _, processor, _ := newTestStack()

	_, err := processor.RecordTransaction(context.Background(), 1, "ghost", dec(10))
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	// The catch-up counts a failed scheduler run, the transaction itself
	// feeds the shared failed-withdrawals counter.
	if store.Meta().TotalPaymentsFailed != 1 {
		t.Errorf("expected 1 failed payment run, got %d", store.Meta().TotalPaymentsFailed)
	}
	if store.Meta().TotalFailedWithdrawals != 1 {
		t.Errorf("expected 1 failed withdrawal, got %d", store.Meta().TotalFailedWithdrawals)
	}
}

func TestProcessor_RecordTransaction_TriggersCatchUp(t *testing.T) {
	// Spec example: account B with 100, payment of 30 due at t=2. A zero
	// deposit at t=2 settles the payment before recording anything.
	store, _, processor, _ := newTestStack()
	ctx := context.Background()

	processor.CreateAccount(ctx, "B", dec(100))
	processor.SchedulePayment(ctx, 0, "B", dec(30), 2)

	if _, err := processor.RecordTransaction(ctx, 2, "B", dec(0)); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	account, _ := store.GetAccount("B")
	if !account.Balance.Equal(dec(70)) {
		t.Errorf("expected balance 70, got %s", account.Balance)
	}
	if !store.Outgoing("B").Equal(dec(30)) {
		t.Errorf("expected outgoing 30, got %s", store.Outgoing("B"))
	}
	if store.Meta().TotalPaymentsExecuted != 1 {
		t.Errorf("expected 1 executed payment, got %d", store.Meta().TotalPaymentsExecuted)
	}
}

func TestProcessor_SchedulePayment_AllocatesSequentialIDs(t *testing.T) {
	_, _, processor, _ := newTestStack()
	ctx := context.Background()

	processor.CreateAccount(ctx, "A", dec(100))

	first, err := processor.SchedulePayment(ctx, 0, "A", dec(10), 5)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	second, err := processor.SchedulePayment(ctx, 0, "A", dec(20), 5)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if second.ScheduledAt != 5 {
		t.Errorf("expected scheduled_at 5, got %d", second.ScheduledAt)
	}
	if second.Status != domain.PaymentStatusPending {
		t.Errorf("expected pending status, got %s", second.Status)
	}
}

func TestProcessor_SchedulePayment_ReissuesIDAfterCancel(t *testing.T) {
	_, _, processor, _ := newTestStack()
	ctx := context.Background()

	processor.CreateAccount(ctx, "A", dec(100))
	processor.SchedulePayment(ctx, 0, "A", dec(10), 5)
	second, _ := processor.SchedulePayment(ctx, 0, "A", dec(20), 5)

	if err := processor.CancelPayment(ctx, 1, "A", second.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	third, err := processor.SchedulePayment(ctx, 1, "A", dec(30), 5)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if third.ID != 2 {
		t.Errorf("expected id 2 to be reissued after cancellation, got %d", third.ID)
	}
}

func TestProcessor_SchedulePayment_MissingAccount(t *testing.T) {
	store, _, processor, _ := newTestStack()

	_, err := processor.SchedulePayment(context.Background(), 0, "ghost", dec(10), 5)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	// Scheduling has no failed-withdrawal side effect; only the catch-up
	// run is counted.
	if store.Meta().TotalFailedWithdrawals != 0 {
		t.Errorf("expected no failed withdrawals, got %d", store.Meta().TotalFailedWithdrawals)
	}
	if store.Meta().TotalPaymentsFailed != 1 {
		t.Errorf("expected 1 failed payment run, got %d", store.Meta().TotalPaymentsFailed)
	}
}

func TestProcessor_CancelPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("removes pending payment not yet due", func(t *testing.T) {
		store, scheduler, processor, _ := newTestStack()
		processor.CreateAccount(ctx, "A", dec(100))
		payment, _ := processor.SchedulePayment(ctx, 0, "A", dec(40), 10)

		if err := processor.CancelPayment(ctx, 3, "A", payment.ID); err != nil {
			t.Fatalf("cancel failed: %v", err)
		}

		account, _ := store.GetAccount("A")
		if _, ok := account.Payments[payment.ID]; ok {
			t.Error("expected payment entry to be removed")
		}
		if ts := store.Meta().TimestampLastProcessed; ts == nil || *ts != 3 {
			t.Errorf("expected last processed 3, got %v", ts)
		}

		// The cancelled payment never resurfaces as executed or skipped.
		if err := scheduler.Advance(ctx, 20, "A"); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		if !account.Balance.Equal(dec(100)) {
			t.Errorf("expected balance untouched at 100, got %s", account.Balance)
		}
		if store.Meta().TotalPaymentsExecuted != 0 {
			t.Errorf("expected no executed payments, got %d", store.Meta().TotalPaymentsExecuted)
		}
	})

	t.Run("unknown payment id", func(t *testing.T) {
		_, _, processor, _ := newTestStack()
		processor.CreateAccount(ctx, "A", dec(100))

		err := processor.CancelPayment(ctx, 1, "A", 7)
		if !errors.Is(err, domain.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("missing account feeds shared failure counter", func(t *testing.T) {
		store, _, processor, _ := newTestStack()

		err := processor.CancelPayment(ctx, 1, "ghost", 1)
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
		if store.Meta().TotalFailedWithdrawals != 1 {
			t.Errorf("expected 1 failed withdrawal, got %d", store.Meta().TotalFailedWithdrawals)
		}
	})

	t.Run("already executed payment cannot be cancelled", func(t *testing.T) {
		_, scheduler, processor, _ := newTestStack()
		processor.CreateAccount(ctx, "A", dec(100))
		payment, _ := processor.SchedulePayment(ctx, 0, "A", dec(40), 2)

		if err := scheduler.Advance(ctx, 5, "A"); err != nil {
			t.Fatalf("advance failed: %v", err)
		}

		err := processor.CancelPayment(ctx, 6, "A", payment.ID)
		if !errors.Is(err, domain.ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("refuses at execution tick", func(t *testing.T) {
		// The catch-up inside cancel settles the payment at its due
		// tick, so the cancel arrives too late.
		store, _, processor, _ := newTestStack()
		processor.CreateAccount(ctx, "A", dec(100))
		payment, _ := processor.SchedulePayment(ctx, 0, "A", dec(40), 5)

		err := processor.CancelPayment(ctx, 5, "A", payment.ID)
		if !errors.Is(err, domain.ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}

		account, _ := store.GetAccount("A")
		if account.Payments[payment.ID].Status != domain.PaymentStatusExecuted {
			t.Errorf("expected payment executed during cancel attempt, got %s",
				account.Payments[payment.ID].Status)
		}
	})

	t.Run("refuses at execution tick even when skipped", func(t *testing.T) {
		// Known edge case: a payment skipped for lack of funds at its
		// exact due tick is refused the same way as an executed one.
		store, _, processor, _ := newTestStack()
		processor.CreateAccount(ctx, "A", dec(10))
		payment, _ := processor.SchedulePayment(ctx, 0, "A", dec(40), 5)

		err := processor.CancelPayment(ctx, 5, "A", payment.ID)
		if !errors.Is(err, domain.ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}

		account, _ := store.GetAccount("A")
		if account.Payments[payment.ID].Status != domain.PaymentStatusSkipped {
			t.Errorf("expected payment skipped during cancel attempt, got %s",
				account.Payments[payment.ID].Status)
		}
	})
}

func TestProcessor_BalanceInvariant(t *testing.T) {
	// balance == initial + sum(applied transactions) - sum(executed payments)
	store, scheduler, processor, _ := newTestStack()
	ctx := context.Background()

	initial := dec(100)
	processor.CreateAccount(ctx, "A", initial)
	processor.RecordTransaction(ctx, 0, "A", dec(50))
	processor.SchedulePayment(ctx, 0, "A", dec(200), 5)
	processor.RecordTransaction(ctx, 3, "A", dec(-100))
	scheduler.Advance(ctx, 5, "A")

	account, _ := store.GetAccount("A")

	expected := initial
	for _, txn := range account.Transactions {
		expected = expected.Add(txn.Amount)
	}
	for _, id := range account.PaymentIDs() {
		if account.Payments[id].Status == domain.PaymentStatusExecuted {
			expected = expected.Sub(account.Payments[id].Amount)
		}
	}

	if !account.Balance.Equal(expected) {
		t.Errorf("balance invariant violated: balance %s, expected %s", account.Balance, expected)
	}
	// The 200 payment was skipped: 50 remains.
	if !account.Balance.Equal(dec(50)) {
		t.Errorf("expected balance 50 per spec example, got %s", account.Balance)
	}
}
