package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside one transaction, committing on success and rolling back on error.
	// Transient failures (serialization conflicts, dropped connections) are retried with backoff.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error

	// Snapshot runs read-only fn against one consistent view: writes committed while fn
	// runs are not visible to any of its reads.
	Snapshot(ctx context.Context, fn func(ctx context.Context) error) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetCreditUsageRepository returns an audit log repository bound to the current transaction
	GetCreditUsageRepository(ctx context.Context) CreditUsageRepository
}
