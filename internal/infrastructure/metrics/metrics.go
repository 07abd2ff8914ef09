package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. The ledger counters mirror the
// in-memory Metadata counters so the /metrics endpoint tracks the report.
type Metrics struct {
	// Account metrics
	AccountsCreated prometheus.Counter

	// Transaction metrics
	TransactionsRecorded *prometheus.CounterVec
	WithdrawalsFailed    *prometheus.CounterVec

	// Payment metrics
	PaymentsScheduled prometheus.Counter
	PaymentsExecuted  prometheus.Counter
	PaymentsSkipped   prometheus.Counter
	PaymentsCancelled prometheus.Counter
	PaymentsFailed    prometheus.Counter

	// Reporting metrics
	ReportsGenerated prometheus.Counter

	// Event metrics
	EventsPublished    *prometheus.CounterVec
	EventPublishErrors prometheus.Counter
}

// Failed-withdrawal reasons. Both feed the shared metadata counter, but the
// metric keeps the causes apart.
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonAccountMissing    = "account_missing"
)

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobilling_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobilling_transactions_recorded_total",
				Help: "Total transactions recorded by type",
			},
			[]string{"type"},
		),
		WithdrawalsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobilling_withdrawals_failed_total",
				Help: "Total failed withdrawals by reason",
			},
			[]string{"reason"},
		),

		PaymentsScheduled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobilling_payments_scheduled_total",
			Help: "Total number of payments scheduled",
		}),
		PaymentsExecuted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobilling_payments_executed_total",
			Help: "Total number of scheduled payments executed",
		}),
		PaymentsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobilling_payments_skipped_total",
			Help: "Total number of scheduled payments skipped for lack of funds",
		}),
		PaymentsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobilling_payments_cancelled_total",
			Help: "Total number of payments cancelled while pending",
		}),
		PaymentsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobilling_payments_failed_total",
			Help: "Total scheduler runs against a missing account",
		}),

		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobilling_reports_generated_total",
			Help: "Total number of structured reports generated",
		}),

		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobilling_events_published_total",
				Help: "Total ledger events published by type",
			},
			[]string{"type"},
		),
		EventPublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobilling_event_publish_errors_total",
			Help: "Total failures publishing ledger events",
		}),
	}
}
