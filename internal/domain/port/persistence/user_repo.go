package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// UserRepository owns the per-user credit balance
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// EnsureExists creates the user with a zero balance if it doesn't exist yet
	EnsureExists(ctx context.Context, id, email string) (*entity.User, error)

	// IncrementCredits atomically adds delta and returns the new balance
	//
	// Possible errors:
	// - ErrUserNotFound
	IncrementCredits(ctx context.Context, id string, delta int64) (int64, error)

	// DecrementCredits atomically subtracts delta only if the balance covers it,
	// returning the new balance
	//
	// Possible errors:
	// - ErrUserNotFound
	// - ErrInsufficientCredits: The balance is left untouched
	DecrementCredits(ctx context.Context, id string, delta int64) (int64, error)
}
