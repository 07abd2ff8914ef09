package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gobilling/internal/domain"
	"github.com/iho/gobilling/internal/usecase"
	"github.com/iho/gobilling/internal/usecase/mocks"
)

func newPublishingStack(t *testing.T) (*usecase.TransactionProcessor, *usecase.PaymentScheduler, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockEventPublisher(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("01ARZ3NDEKTSV4RRFFQ69G5FAV").AnyTimes()

	logger := zerolog.Nop()
	store := usecase.NewStore()
	scheduler := usecase.NewPaymentScheduler(store, publisher, idGen, logger, nil)
	processor := usecase.NewTransactionProcessor(store, scheduler, publisher, idGen, logger, nil)
	return processor, scheduler, publisher
}

func TestProcessor_PublishesLedgerEvents(t *testing.T) {
	processor, scheduler, publisher := newPublishingStack(t)
	ctx := context.Background()

	publisher.EXPECT().
		Publish(ctx, eventOfType(domain.EventTypeAccountCreated)).
		Return(nil)
	processor.CreateAccount(ctx, "A", decimal.NewFromInt(100))

	publisher.EXPECT().
		Publish(ctx, eventOfType(domain.EventTypeTransactionRecorded)).
		Return(nil)
	if _, err := processor.RecordTransaction(ctx, 1, "A", decimal.NewFromInt(-20)); err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}

	if _, err := processor.SchedulePayment(ctx, 1, "A", decimal.NewFromInt(30), 2); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	publisher.EXPECT().
		Publish(ctx, eventOfType(domain.EventTypePaymentExecuted)).
		Return(nil)
	if err := scheduler.Advance(ctx, 3, "A"); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
}

func TestProcessor_PublishFailureDoesNotFailOperation(t *testing.T) {
	processor, _, publisher := newPublishingStack(t)
	ctx := context.Background()

	publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(errors.New("broker unavailable")).
		Times(2)

	account := processor.CreateAccount(ctx, "A", decimal.NewFromInt(100))
	if account == nil {
		t.Fatal("expected account despite publish failure")
	}

	txn, err := processor.RecordTransaction(ctx, 1, "A", decimal.NewFromInt(10))
	if err != nil {
		t.Fatalf("expected transaction to succeed despite publish failure, got %v", err)
	}
	if !txn.Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("unexpected amount: %s", txn.Amount)
	}
}

// eventOfType matches a ledger event by its type field.
func eventOfType(eventType string) gomock.Matcher {
	return gomock.Cond(func(event *domain.LedgerEvent) bool {
		return event.Type == eventType
	})
}
