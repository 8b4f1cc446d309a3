package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/usecase"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/port"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/service"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/infrastructure/config"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/infrastructure/messaging"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/infrastructure/metrics"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/infrastructure/persistence/memory"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/presentation/rest"
	kafkapkg "github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/kafka"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/observability"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/tlsutil"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	loc, _ := cfg.Lifecycle.LoadLocation()
	cutoff := service.NewCutoffPolicy(cfg.Lifecycle.CutoffHour, loc)

	logger.Info("starting payment-mock",
		"http_port", cfg.HTTPPort,
		"pending_delay", cfg.Lifecycle.PendingDelay.String(),
		"cutoff_hour", cfg.Lifecycle.CutoffHour,
		"location", cutoff.Location().String(),
	)

	// Initialize tracing.
	if cfg.Telemetry.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Endpoint:    cfg.Telemetry.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer shutdown(context.Background())
		}
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(context.Background())

	recorder, err := metrics.NewRecorder(meterProvider)
	if err != nil {
		logger.Error("failed to create metrics recorder", "error", err)
		os.Exit(1)
	}

	// Event publishing: Kafka when brokers are configured, the log otherwise.
	var publisher port.EventPublisher = messaging.NewLogPublisher(logger)
	kafkaCfg := kafkapkg.Config{
		Brokers:       cfg.Kafka.Brokers,
		ClientID:      cfg.Kafka.ClientID,
		TLS:           cfg.Kafka.TLS,
		SASLEnabled:   cfg.Kafka.SASLEnabled(),
		SASLMechanism: cfg.Kafka.SASLMechanism,
		SASLUsername:  cfg.Kafka.SASLUsername,
		SASLPassword:  cfg.Kafka.SASLPassword,
	}
	if cfg.Kafka.TLS {
		tlsCfg, err := tlsutil.ClientConfig(cfg.Kafka.TLSCAFile, cfg.Kafka.TLSInsecure)
		if err != nil {
			logger.Error("failed to build kafka TLS config", "error", err)
			os.Exit(1)
		}
		kafkaCfg.TLSConfig = tlsCfg
	}
	if kafkaCfg.Enabled() {
		producer := kafkapkg.NewProducer(kafkaCfg)
		defer producer.Close()
		publisher = messaging.NewPublisher(producer)
		logger.Info("publishing lifecycle events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	// Wire dependencies (DI via constructors).
	clock := func() time.Time { return time.Now().In(cutoff.Location()) }
	store := memory.NewPaymentStore()
	ledger := memory.NewIdempotencyLedger()
	emitter := usecase.NewEventEmitter(publisher, cfg.Kafka.Topic, cfg.Kafka.PublishTimeout, logger)
	markPendingUC := usecase.NewMarkPending(store, emitter, recorder, clock, logger)
	scheduler := service.NewTransitionScheduler(cfg.Lifecycle.PendingDelay, markPendingUC.Fire, logger)

	handler := rest.NewPaymentHandler(
		usecase.NewCreatePayment(store, ledger, scheduler, emitter, recorder, cutoff, clock, logger),
		usecase.NewGetPayment(store),
		usecase.NewRenderMessage(store, recorder, clock),
		usecase.NewRenderStatement(store, recorder, clock),
		usecase.NewRejectPayment(store, emitter, recorder, clock, logger),
		usecase.NewResetState(store, ledger, logger),
		logger,
	)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           rest.NewServer(handler, metricsHandler, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	if err := scheduler.Close(shutdownCtx); err != nil {
		logger.Warn("pending transitions did not finish", "error", err)
	}
	logger.Info("payment-mock stopped")
}
