package main

import (
	"context"
	"fmt"
	"io"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

// storage is the persistence side chosen by database.driver
type storage struct {
	uow      persistence.UnitOfWork
	packages persistence.CreditPackageRepository
	inbox    persistence.WebhookEventRepository
	checks   []handler.HealthCheck
	closers  []io.Closer
}

// realtime is the notifier fan-out plus the subscriber that feeds the event stream
type realtime struct {
	notifier   notification.Notifier
	subscriber notification.Subscriber
	checks     []handler.HealthCheck
	closers    []io.Closer
}

func openStorage(ctx context.Context, cfg *config.Config, logger coreport.Logger, tp coreport.TimeProvider) (*storage, error) {
	if cfg.Database.Driver == "memory" {
		logger.Warn("Using the in-memory store; balances are lost on restart", nil)
		store := memory.NewStore(tp)
		s := &storage{
			uow:      memory.NewUnitOfWork(store),
			packages: store.PackageRepository(),
			inbox:    store.WebhookEventRepository(),
		}
		if err := migration.SeedPackages(ctx, s.packages, packagesFromConfig(cfg.Credits.Packages)); err != nil {
			return nil, fmt.Errorf("seed packages: %w", err)
		}
		return s, nil
	}

	manager := database.NewManager(database.CreateConfigFromViperConfig(cfg), logger, tp)
	if _, err := manager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := manager.Migrate(ctx); err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	s := &storage{
		uow:      manager.CreateUnitOfWork(),
		packages: manager.CreditPackageRepository(),
		inbox:    manager.WebhookEventRepository(),
		checks:   []handler.HealthCheck{manager.HealthChecker()},
		closers:  []io.Closer{manager},
	}
	if err := migration.SeedPackages(ctx, s.packages, packagesFromConfig(cfg.Credits.Packages)); err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("seed packages: %w", err)
	}
	return s, nil
}

func packagesFromConfig(in []config.PackageConfig) []entity.CreditPackage {
	out := make([]entity.CreditPackage, 0, len(in))
	for _, p := range in {
		out = append(out, entity.CreditPackage{
			ID:        p.ID,
			Name:      p.Name,
			Credits:   p.Credits,
			Price:     p.Price,
			Active:    p.Active,
			SortOrder: p.SortOrder,
		})
	}
	return out
}

// openRealtime wires Redis pub/sub when enabled and the in-process hub otherwise.
// Kafka is an additional sink for downstream consumers, never a subscriber source.
func openRealtime(ctx context.Context, cfg *config.Config, logger coreport.Logger) (*realtime, error) {
	rt := &realtime{}
	var sinks notifier.Multi

	if cfg.Redis.Enabled {
		client, err := notifier.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		r := notifier.NewRedis(client, logger.With(map[string]any{"notifier": "redis"}))
		sinks = append(sinks, r)
		rt.subscriber = r
		rt.checks = append(rt.checks, r)
		rt.closers = append(rt.closers, client)
	} else {
		hub := notifier.NewHub(logger.With(map[string]any{"notifier": "hub"}))
		sinks = append(sinks, hub)
		rt.subscriber = hub
	}

	if cfg.Kafka.Enabled {
		producer, err := notifier.NewKafkaProducer(cfg.Kafka)
		if err != nil {
			rt.close(logger)
			return nil, err
		}
		k := notifier.NewKafka(producer, cfg.Kafka.Topic, logger.With(map[string]any{"notifier": "kafka"}))
		sinks = append(sinks, k)
		rt.closers = append(rt.closers, k)
	}

	rt.notifier = sinks
	return rt, nil
}

func (rt *realtime) close(logger coreport.Logger) {
	closeAll(rt.closers, logger)
}

func closeAll(closers []io.Closer, logger coreport.Logger) {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			logger.Warn("Close failed", map[string]any{"error": err.Error()})
		}
	}
}
