package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes gorm tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

// advancedIndexes is applied in order; every statement is idempotent
var advancedIndexes = []indexStatement{
	{
		// At most one grant per transaction, whatever the application does.
		name: "idx_credit_usages_grant_once",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_credit_usages_grant_once
			ON credit_usages (transaction_id)
			WHERE kind = 'grant'`,
	},
	{
		name: "idx_transactions_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_pending
			ON transactions (created_at)
			WHERE status = 'PENDING'`,
	},
	{
		name: "idx_transactions_user_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_user_created
			ON transactions (user_id, created_at DESC)`,
	},
	{
		name: "idx_webhook_events_external_received",
		sql: `CREATE INDEX IF NOT EXISTS idx_webhook_events_external_received
			ON webhook_events (external_id, received_at)`,
	},
	{
		name: "idx_webhook_events_received_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_webhook_events_received_brin
			ON webhook_events USING BRIN (received_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates partial, ordered and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies storage settings. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// users and transactions are updated in place on every settlement
	tweaks := []string{
		`ALTER TABLE users SET (fillfactor = 90)`,
		`ALTER TABLE transactions SET (fillfactor = 90)`,
		`ALTER TABLE transactions ALTER COLUMN external_id SET STATISTICS 1000`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
