package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/credit"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/topup"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/webhook"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/auth"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/provider"
	timeProvider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration; LoadConfig validates before returning
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{Level: cfg.Logger.Level, Format: cfg.Logger.Format})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	_ = appLogger.Flush()
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	ids := idgen.NewUUIDGenerator()

	store, err := openStorage(ctx, cfg, appLogger, tp)
	if err != nil {
		return err
	}
	defer closeAll(store.closers, appLogger)

	rt, err := openRealtime(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer rt.close(appLogger)

	registry, err := provider.BuildRegistry(cfg, appLogger)
	if err != nil {
		return err
	}

	latePolicy, err := reconciliation.ParseLatePaymentPolicy(cfg.Payment.LatePaymentPolicy)
	if err != nil {
		return err
	}

	// Initialize use cases
	reconciler := reconciliation.NewEngine(store.uow, store.packages, rt.notifier, ids, tp, appLogger, reconciliation.Config{
		LatePaymentPolicy:      latePolicy,
		MinContainsMatchLength: cfg.Payment.MinContainsMatchLength,
		NotifyTimeout:          cfg.Notifier.Timeout,
	})
	topUps := topup.NewService(store.uow, store.packages, store.inbox, registry, reconciler, ids, tp, appLogger, topup.Config{
		ExternalIDPrefix: cfg.Payment.ExternalIDPrefix,
		HistoryLimit:     cfg.Payment.HistoryLimit,
	})
	credits := credit.NewService(store.uow, ids, tp, appLogger, credit.Config{
		Costs:        cfg.Credits.Costs,
		HistoryLimit: cfg.Credits.HistoryLimit,
	})
	webhooks := webhook.NewService(registry, store.inbox, reconciler, ids, tp, appLogger)

	// Initialize API handlers
	checks := append(append([]handler.HealthCheck{}, store.checks...), rt.checks...)
	events := handler.NewEventsHandler(rt.subscriber, 0, appLogger)
	router := routes.NewRouter(appLogger, cfg.Server.AllowedOrigins, routes.Handlers{
		TopUp:   handler.NewTopUpHandler(topUps, appLogger),
		Credit:  handler.NewCreditHandler(credits, appLogger),
		Webhook: handler.NewWebhookHandler(webhooks, appLogger),
		Events:  events,
		Health:  handler.NewHealthHandler(cfg.Database.QueryTimeout, checks...),
	}, auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	server.RegisterOnShutdown(events.Close)

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"driver":    cfg.Database.Driver,
			"providers": registry.Names(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
