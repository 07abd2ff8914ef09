package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobilling/internal/domain"
)

func TestSummaryFromDomain(t *testing.T) {
	executedAt := int64(5)
	summary := &domain.AccountSummary{
		ID:       "acc1",
		Balance:  decimal.NewFromInt(70),
		Outgoing: decimal.NewFromInt(30),
		Transactions: map[domain.TransactionType][]domain.Transaction{
			domain.TransactionTypeDeposit: {
				{Type: domain.TransactionTypeDeposit, Amount: decimal.NewFromInt(50), Timestamp: 1},
			},
		},
		Payments: map[domain.PaymentStatus][]domain.Payment{
			domain.PaymentStatusExecuted: {
				{ID: 1, Status: domain.PaymentStatusExecuted, Amount: decimal.NewFromInt(30), ScheduledAt: 5, ExecutedAt: &executedAt},
			},
		},
	}

	resp := SummaryFromDomain(summary)

	require.Len(t, resp.Transactions["deposit"], 1)
	require.Len(t, resp.PaymentStatus["executed"], 1)
	assert.Equal(t, "payment1", resp.PaymentStatus["executed"][0].ID)
	require.NotNil(t, resp.PaymentStatus["executed"][0].ExecutedAt)
	assert.Equal(t, int64(5), *resp.PaymentStatus["executed"][0].ExecutedAt)
}

func TestSummaryFromDomain_OmitsEmptyGroups(t *testing.T) {
	summary := &domain.AccountSummary{
		ID:       "acc1",
		Balance:  decimal.NewFromInt(100),
		Outgoing: decimal.Zero,
	}

	raw, err := json.Marshal(SummaryFromDomain(summary))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "transactions")
	assert.NotContains(t, string(raw), "payment_status")
}

func TestSummaryFromDomain_AmountsAsDecimalStrings(t *testing.T) {
	summary := &domain.AccountSummary{
		ID:       "acc1",
		Balance:  decimal.RequireFromString("70.5"),
		Outgoing: decimal.NewFromInt(30),
	}

	raw, err := json.Marshal(SummaryFromDomain(summary))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"balance":"70.5"`)
}

func TestMetadataFromDomain_NullableTimestamp(t *testing.T) {
	raw, err := json.Marshal(MetadataFromDomain(domain.Metadata{}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"timestamp_last_processed":null`)

	ts := int64(9)
	raw, err = json.Marshal(MetadataFromDomain(domain.Metadata{TimestampLastProcessed: &ts}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"timestamp_last_processed":9`)
}

func TestReportFromDomain(t *testing.T) {
	report := &domain.Report{
		Accounts: []*domain.AccountSummary{
			{ID: "acc1", Balance: decimal.NewFromInt(70), Outgoing: decimal.NewFromInt(30)},
		},
		TopSpenders: []domain.SpenderEntry{
			{AccountID: "acc1", Outgoing: decimal.NewFromInt(30)},
		},
		Meta: domain.Metadata{TotalPaymentsExecuted: 1},
	}

	resp := ReportFromDomain(report)

	require.Len(t, resp.Accounts, 1)
	require.Len(t, resp.TopSpenders, 1)
	assert.Equal(t, "acc1", resp.TopSpenders[0].AccountID)
	assert.Equal(t, int64(1), resp.Meta.TotalPaymentsExecuted)
}
