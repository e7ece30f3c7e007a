//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

// TestDatabase is a migrated PostgreSQL running in a throwaway container
type TestDatabase struct {
	Manager   *Manager
	Config    *Config
	Container testcontainers.Container
}

// SetupTestDatabase starts postgres, connects, migrates and seeds the default packages.
// Everything is torn down through t.Cleanup.
func SetupTestDatabase(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDatabase {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping container-based test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "ledger",
			"POSTGRES_PASSWORD": "ledger",
			"POSTGRES_DB":       "credit_ledger_test",
		},
		// postgres logs readiness once for the init server and once for the real one
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get postgres host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("Failed to get postgres port: %v", err)
	}

	config := &Config{
		Driver:          "postgres",
		Host:            host,
		Port:            port.Int(),
		Username:        "ledger",
		Password:        "ledger",
		Database:        "credit_ledger_test",
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   3,
		RetryDelay:      1,
		TxMaxRetries:    5,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := migration.SeedPackages(ctx, manager.CreditPackageRepository(), nil); err != nil {
		t.Fatalf("Failed to seed packages: %v", err)
	}

	return &TestDatabase{
		Manager:   manager,
		Config:    config,
		Container: container,
	}
}

// Truncate empties every ledger table and keeps the package catalog
func (d *TestDatabase) Truncate(t *testing.T) {
	t.Helper()

	err := d.Manager.DB().Exec(`TRUNCATE TABLE credit_usages, transactions, webhook_events, users CASCADE`).Error
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CreateUser inserts a user with the given balance
func (d *TestDatabase) CreateUser(t *testing.T, id string, credits int64) {
	t.Helper()

	now := time.Now().UTC()
	user := model.User{
		ID:        id,
		Email:     id + "@example.com",
		Credits:   credits,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}
