package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// TransactionRepository stores top-up attempts
type TransactionRepository interface {
	// Create saves a new PENDING transaction
	//
	// Possible errors:
	// - ErrDuplicateExternalID: If the external id is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by its internal id
	//
	// Possible errors:
	// - ErrTransactionNotFound
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// GetByIDForUpdate is GetByID with a row lock held until the unit of work ends
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Transaction, error)

	// FindByExternalID resolves an external id, preferring an exact match and falling
	// back to a single contains-match for references at least minContainsLen long.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If nothing matches
	// - ErrAmbiguousExternalID: If the contains fallback matches more than one row
	FindByExternalID(ctx context.Context, externalID string, minContainsLen int) (*entity.Transaction, error)

	// UpdateAfterCreate applies provider data to a still-PENDING transaction.
	// An amount change is only accepted while the amount is uncorrected.
	//
	// Possible errors:
	// - ErrTransactionNotFound
	// - ErrInvalidStatusTransition: If the transaction already left PENDING
	// - ErrAmountAlreadyCorrected
	UpdateAfterCreate(ctx context.Context, id string, patch entity.TransactionPatch) error

	// MarkPaid sets status PAID with paidAt and method only if the current status is one of from.
	// Returns false when the precondition didn't hold and nothing was written.
	MarkPaid(ctx context.Context, id string, paidAt time.Time, method string, from ...entity.TransactionStatus) (bool, error)

	// TransitionFromPending moves a PENDING transaction to EXPIRED or FAILED.
	// Returns false when the transaction was no longer PENDING.
	TransitionFromPending(ctx context.Context, id string, to entity.TransactionStatus) (bool, error)

	// ListByUser returns the most recent transactions of a user, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)
}
