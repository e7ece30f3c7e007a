package reconciliation

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

// Resolver maps a provider-reported external id back to a stored transaction
type Resolver struct {
	uow            persistence.UnitOfWork
	logger         coreport.Logger
	minContainsLen int
}

// NewResolver creates a new Resolver. A minContainsLen of zero disables the contains fallback.
func NewResolver(uow persistence.UnitOfWork, logger coreport.Logger, minContainsLen int) *Resolver {
	return &Resolver{
		uow:            uow,
		logger:         logger,
		minContainsLen: minContainsLen,
	}
}

// Resolve finds the transaction by exact external id first, then by a unique contains-match
func (r *Resolver) Resolve(ctx context.Context, externalID string) (*entity.Transaction, error) {
	txn, err := r.uow.GetTransactionRepository(ctx).FindByExternalID(ctx, externalID, r.minContainsLen)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", externalID, err)
	}

	if txn.ExternalID != externalID {
		r.logger.Info("Resolved external id by containment", map[string]any{
			"reported_external_id": externalID,
			"external_id":          txn.ExternalID,
			"transaction_id":       txn.ID,
		})
	}
	return txn, nil
}
