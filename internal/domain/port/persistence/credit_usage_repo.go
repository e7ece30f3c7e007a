package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// CreditUsageRepository is the append-only audit log of balance changes
type CreditUsageRepository interface {
	// Append writes one audit row. A second grant for the same transaction is rejected
	// with ErrConstraintViolation.
	Append(ctx context.Context, usage *entity.CreditUsage) error

	// ListByUser returns the most recent rows of a user, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.CreditUsage, error)

	// TotalsByUser sums grants and debits for a user
	TotalsByUser(ctx context.Context, userID string) (entity.UsageTotals, error)
}
