package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iho/gobilling/internal/adapter/dispatch"
	httpAdapter "github.com/iho/gobilling/internal/adapter/http"
	"github.com/iho/gobilling/internal/adapter/http/handler"
	"github.com/iho/gobilling/internal/adapter/loader"
	"github.com/iho/gobilling/internal/infrastructure/config"
	"github.com/iho/gobilling/internal/infrastructure/eventpublisher"
	"github.com/iho/gobilling/internal/infrastructure/id"
	"github.com/iho/gobilling/internal/infrastructure/logger"
	"github.com/iho/gobilling/internal/infrastructure/metrics"
	"github.com/iho/gobilling/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Setup metrics
	appMetrics := metrics.New()

	// Pick the event sink: Kafka when brokers are configured, the log
	// otherwise.
	var publisher usecase.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := eventpublisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing events to kafka")
	} else {
		publisher = eventpublisher.NewLogPublisher(log)
	}

	// Build the ledger
	idGen := id.NewULIDGenerator()
	store := usecase.NewStore()
	scheduler := usecase.NewPaymentScheduler(store, publisher, idGen, log, appMetrics)
	processor := usecase.NewTransactionProcessor(store, scheduler, publisher, idGen, log, appMetrics)
	reporting := usecase.NewReporting(store, scheduler, log, appMetrics, cfg.ReportTopK)

	// Load seeds and replay the event log before serving queries
	seeds, err := loader.LoadAccounts(cfg.AccountsFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.AccountsFile).Msg("failed to load accounts")
	}
	events, err := loader.LoadEvents(cfg.EventsFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.EventsFile).Msg("failed to load events")
	}

	dispatcher := dispatch.NewDispatcher(processor, reporting, seeds, log)
	dispatcher.Replay(context.Background(), events, nil)
	log.Info().Int("accounts", len(seeds)).Int("events", len(events)).Msg("event log replayed")

	// Initialize handlers
	reportHandler := handler.NewReportHandler(reporting, cfg.ReportTopK)
	healthHandler := handler.NewHealthHandler(reporting)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReportHandler: reportHandler,
		HealthHandler: healthHandler,
		Logger:        log,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
