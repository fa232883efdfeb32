package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/checkout-gateway/internal/api"
	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-gateway/internal/config"
	"github.com/DanielPopoola/checkout-gateway/internal/infrastructure/metrics"
	"github.com/DanielPopoola/checkout-gateway/internal/infrastructure/paypal"
	"github.com/DanielPopoola/checkout-gateway/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/checkout-gateway/internal/infrastructure/tracing"
	"github.com/DanielPopoola/checkout-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/checkout-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/checkout-gateway/internal/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout gateway",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"paypal_sandbox", cfg.PayPal.Sandbox,
	)

	ctx := context.Background()

	tracerProvider, err := tracing.InitTracer(ctx, cfg.Tracing)
	if err != nil {
		logger.Error("failed to initialise tracing", "error", err)
		os.Exit(1)
	}
	if tracerProvider != nil {
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed to flush traces", "error", err)
			}
		}()
	}

	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	idempotencyRepo := postgres.NewIdempotencyRepository(db)

	paypalClient := paypal.NewClient(cfg.PayPal, cfg.Retry, logger)
	gateway := metrics.NewInstrumentedGateway(paypalClient, prometheus.DefaultRegisterer)

	policy := application.NewErrorPolicy(cfg.PayPal.Sandbox, cfg.PayPal.Debug, cfg.PayPal.StandardErrorMessage)
	assembler := services.NewOrderAssembler(cfg.PayPal.DefaultCountry)

	checkoutService := services.NewCheckoutService(gateway, assembler, policy, logger)
	captureService := services.NewCaptureService(gateway, policy, logger)

	h := handlers.NewHandlers(
		checkoutService,
		captureService,
		db,
		idempotencyRepo,
		handlers.OrderDefaults{
			CurrencyCode: cfg.PayPal.DefaultCurrency,
			BrandName:    cfg.PayPal.BrandName,
		},
		logger,
	)

	doc, err := api.Load()
	if err != nil {
		logger.Error("failed to load api contract", "error", err)
		os.Exit(1)
	}
	validateRequest, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	h.RegisterRoutes(mux)

	handler := validateRequest(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	janitor := worker.NewIdempotencyJanitor(
		idempotencyRepo,
		cfg.Idempotency.SweepInterval,
		cfg.Idempotency.Retention,
		cfg.Idempotency.LockTimeout,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go janitor.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
