package usecase

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func newTestStack() (*Store, *PaymentScheduler, *TransactionProcessor, *Reporting) {
	store := NewStore()
	logger := zerolog.Nop()
	scheduler := NewPaymentScheduler(store, nil, nil, logger, nil)
	processor := NewTransactionProcessor(store, scheduler, nil, nil, logger, nil)
	reporting := NewReporting(store, scheduler, logger, nil, 2)
	return store, scheduler, processor, reporting
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
