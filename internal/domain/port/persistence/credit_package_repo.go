package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// CreditPackageRepository reads the package catalog
type CreditPackageRepository interface {
	// GetByID returns an active package or ErrPackageNotFound
	GetByID(ctx context.Context, id string) (*entity.CreditPackage, error)

	// ListActive returns active packages ordered for display
	ListActive(ctx context.Context) ([]*entity.CreditPackage, error)

	// Upsert inserts or replaces a catalog entry
	Upsert(ctx context.Context, pkg *entity.CreditPackage) error
}
