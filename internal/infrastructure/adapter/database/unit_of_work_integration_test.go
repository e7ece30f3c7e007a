//go:build integration

package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
)

func TestUnitOfWork_Integration(t *testing.T) {
	tp := timeprovider.NewRealTimeProvider()
	testDB := SetupTestDatabase(t, logger.NewNoopLogger(), tp)
	ids := idgen.NewUUIDGenerator()
	ctx := context.Background()

	newPending := func(t *testing.T, userID string) *entity.Transaction {
		t.Helper()
		txn, err := entity.NewTransaction(ids.NewID(), ids.NewReference("TOPUP", tp.Now()), userID, "bengkel", 10000, "qrispolling", tp)
		require.NoError(t, err)
		require.NoError(t, testDB.Manager.CreateUnitOfWork().GetTransactionRepository(ctx).Create(ctx, txn))
		return txn
	}

	t.Run("should roll back every write when fn fails", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 3)
		uow := testDB.Manager.CreateUnitOfWork()
		boom := errors.New("boom")

		// Act
		err := uow.Execute(ctx, func(ctx context.Context) error {
			if _, err := uow.GetUserRepository(ctx).IncrementCredits(ctx, "user-1", 5); err != nil {
				return err
			}
			return boom
		})

		// Assert
		assert.ErrorIs(t, err, boom)
		user, err := uow.GetUserRepository(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.Credits())
	})

	t.Run("should join an enclosing unit instead of nesting", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 0)
		uow := testDB.Manager.CreateUnitOfWork()

		// Act
		err := uow.Execute(ctx, func(outer context.Context) error {
			if err := uow.Execute(outer, func(inner context.Context) error {
				_, err := uow.GetUserRepository(inner).IncrementCredits(inner, "user-1", 4)
				return err
			}); err != nil {
				return err
			}
			return errors.New("outer failed")
		})

		// Assert
		require.Error(t, err)
		user, err := uow.GetUserRepository(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Credits())
	})

	t.Run("should settle a transaction exactly once under concurrent reports", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 0)
		txn := newPending(t, "user-1")
		uow := testDB.Manager.CreateUnitOfWork()

		const reporters = 12
		var wins atomic.Int32
		var wg sync.WaitGroup

		// Act
		for range reporters {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := uow.Execute(ctx, func(ctx context.Context) error {
					now := time.Now().UTC()
					ok, err := uow.GetTransactionRepository(ctx).MarkPaid(ctx, txn.ID, now, "QRIS", entity.StatusPending)
					if err != nil || !ok {
						return err
					}
					balance, err := uow.GetUserRepository(ctx).IncrementCredits(ctx, "user-1", 12)
					if err != nil {
						return err
					}
					if err := uow.GetCreditUsageRepository(ctx).Append(ctx, entity.NewGrant(ids.NewID(), "user-1", txn.ID, 12, balance, now)); err != nil {
						return err
					}
					wins.Add(1)
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// Assert
		assert.Equal(t, int32(1), wins.Load())
		user, err := uow.GetUserRepository(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(12), user.Credits())

		totals, err := uow.GetCreditUsageRepository(ctx).TotalsByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(12), totals.Granted)
	})

	t.Run("should never take a balance below zero under concurrent debits", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 5)
		uow := testDB.Manager.CreateUnitOfWork()

		var succeeded, refused atomic.Int32
		var wg sync.WaitGroup

		// Act
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := uow.Execute(ctx, func(ctx context.Context) error {
					balance, err := uow.GetUserRepository(ctx).DecrementCredits(ctx, "user-1", 1)
					if err != nil {
						return err
					}
					return uow.GetCreditUsageRepository(ctx).Append(ctx, entity.NewDebit(ids.NewID(), "user-1", "diagnosis", nil, 1, balance, time.Now().UTC()))
				})
				switch {
				case err == nil:
					succeeded.Add(1)
				case errors.Is(err, errs.ErrInsufficientCredits):
					refused.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		// Assert
		assert.Equal(t, int32(5), succeeded.Load())
		assert.Equal(t, int32(5), refused.Load())
		user, err := uow.GetUserRepository(ctx).GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Credits())
	})

	t.Run("should refuse a second grant row for the same transaction", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 0)
		txn := newPending(t, "user-1")
		usages := testDB.Manager.CreateUnitOfWork().GetCreditUsageRepository(ctx)
		now := time.Now().UTC()
		require.NoError(t, usages.Append(ctx, entity.NewGrant(ids.NewID(), "user-1", txn.ID, 12, 12, now)))

		// Act
		err := usages.Append(ctx, entity.NewGrant(ids.NewID(), "user-1", txn.ID, 12, 24, now))

		// Assert
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("should hide a grant committed while a snapshot reads", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 0)
		txn := newPending(t, "user-1")
		uow := testDB.Manager.CreateUnitOfWork()

		var before int64
		var totals entity.UsageTotals

		// Act
		err := uow.Snapshot(ctx, func(snapCtx context.Context) error {
			user, err := uow.GetUserRepository(snapCtx).GetByID(snapCtx, "user-1")
			if err != nil {
				return err
			}
			before = user.Credits()

			if err := uow.Execute(ctx, func(ctx context.Context) error {
				balance, err := uow.GetUserRepository(ctx).IncrementCredits(ctx, "user-1", 12)
				if err != nil {
					return err
				}
				return uow.GetCreditUsageRepository(ctx).Append(ctx, entity.NewGrant(ids.NewID(), "user-1", txn.ID, 12, balance, time.Now().UTC()))
			}); err != nil {
				return err
			}

			totals, err = uow.GetCreditUsageRepository(snapCtx).TotalsByUser(snapCtx, "user-1")
			return err
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(0), before)
		assert.Equal(t, int64(0), totals.Granted)
		assert.True(t, entity.NewLedgerAudit("user-1", before, totals).Consistent)

		after, err := uow.GetCreditUsageRepository(ctx).TotalsByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(12), after.Granted)
	})

	t.Run("should reject a negative balance at the database", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 1)

		// Act
		err := testDB.Manager.DB().Exec(`UPDATE users SET credits = -1 WHERE id = ?`, "user-1").Error

		// Assert
		require.Error(t, err)
		assert.True(t, NewErrorMapper().classifier.IsCheckViolation(err))
	})
}

func TestMigrationManager_Integration(t *testing.T) {
	testDB := SetupTestDatabase(t, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	ctx := context.Background()

	t.Run("should record the current version and be idempotent", func(t *testing.T) {
		// Act
		err := testDB.Manager.Migrate(ctx)

		// Assert
		require.NoError(t, err)
		version, err := testDB.Manager.MigrationManager().GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1.1.0", version)
	})

	t.Run("should serve the seeded catalog in display order", func(t *testing.T) {
		// Act
		packages, err := testDB.Manager.CreditPackageRepository().ListActive(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, packages, 3)
		assert.Equal(t, "starter", packages[0].ID)
		assert.Equal(t, "armada", packages[2].ID)
	})
}
