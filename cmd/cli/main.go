package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/gobilling/internal/adapter/dispatch"
	"github.com/iho/gobilling/internal/adapter/http/dto"
	"github.com/iho/gobilling/internal/adapter/loader"
	"github.com/iho/gobilling/internal/domain"
	"github.com/iho/gobilling/internal/infrastructure/id"
	"github.com/iho/gobilling/internal/infrastructure/logger"
	"github.com/iho/gobilling/internal/usecase"
)

var (
	accountsFile string
	eventsFile   string
	pretty       bool
	logLevel     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobilling-cli",
		Short: "GoBilling CLI tool",
		Long:  `A command line interface for replaying account event logs and printing reports.`,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")

	rootCmd.AddCommand(replayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func replayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay an event log against seeded accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&accountsFile, "accounts", "accounts.csv", "Account seed CSV file")
	cmd.Flags().StringVar(&eventsFile, "events", "events.json", "Event log JSON file")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Indent query output")

	return cmd
}

func runReplay(ctx context.Context) error {
	log := logger.New(logger.Config{Level: logLevel, Format: "console"})

	seeds, err := loader.LoadAccounts(accountsFile)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	events, err := loader.LoadEvents(eventsFile)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	dispatcher := buildDispatcher(log, seeds)
	dispatcher.Replay(ctx, events, func(result any) {
		printJSON(toResponse(result))
		fmt.Println()
	})

	return nil
}

func buildDispatcher(log zerolog.Logger, seeds map[string]decimal.Decimal) *dispatch.Dispatcher {
	store := usecase.NewStore()
	scheduler := usecase.NewPaymentScheduler(store, nil, id.NewULIDGenerator(), log, nil)
	processor := usecase.NewTransactionProcessor(store, scheduler, nil, id.NewULIDGenerator(), log, nil)
	reporting := usecase.NewReporting(store, scheduler, log, nil, 2)
	return dispatch.NewDispatcher(processor, reporting, seeds, log)
}

// toResponse maps a query result onto its external representation.
func toResponse(result any) any {
	switch v := result.(type) {
	case []domain.SpenderEntry:
		return dto.SpendersFromDomain(v)
	case *domain.AccountSummary:
		return dto.SummaryFromDomain(v)
	case *domain.Report:
		return dto.ReportFromDomain(v)
	default:
		return v
	}
}

func printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(data); err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
	}
}
