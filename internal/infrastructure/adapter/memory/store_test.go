package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
)

func newFixture(t *testing.T) (*Store, *UnitOfWork, *timeprovider.FixedTimeProvider) {
	t.Helper()
	tp := timeprovider.NewFixedTimeProvider(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	store := NewStore(tp)
	return store, NewUnitOfWork(store), tp
}

func createPending(t *testing.T, uow *UnitOfWork, tp *timeprovider.FixedTimeProvider, id, externalID string) {
	t.Helper()
	txn, err := entity.NewTransaction(id, externalID, "user-1", "starter", 5000, "qrispolling", tp)
	require.NoError(t, err)
	require.NoError(t, uow.GetTransactionRepository(context.Background()).Create(context.Background(), txn))
}

func TestUnitOfWork_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("should undo every write of a failed unit", func(t *testing.T) {
		// Arrange
		_, uow, tp := newFixture(t)
		_, err := uow.GetUserRepository(ctx).EnsureExists(ctx, "user-1", "")
		require.NoError(t, err)
		createPending(t, uow, tp, "txn-1", "TOPUP-1")
		boom := errors.New("boom")

		// Act
		err = uow.Execute(ctx, func(ctx context.Context) error {
			if _, err := uow.GetTransactionRepository(ctx).MarkPaid(ctx, "txn-1", tp.Now(), "QRIS", entity.StatusPending); err != nil {
				return err
			}
			balance, err := uow.GetUserRepository(ctx).IncrementCredits(ctx, "user-1", 5)
			if err != nil {
				return err
			}
			if err := uow.GetCreditUsageRepository(ctx).Append(ctx, entity.NewGrant("g-1", "user-1", "txn-1", 5, balance, tp.Now())); err != nil {
				return err
			}
			return boom
		})

		// Assert
		assert.ErrorIs(t, err, boom)
		txn, _ := uow.GetTransactionRepository(ctx).GetByID(ctx, "txn-1")
		assert.Equal(t, entity.StatusPending, txn.Status)
		assert.Nil(t, txn.PaidAt)
		user, _ := uow.GetUserRepository(ctx).GetByID(ctx, "user-1")
		assert.Equal(t, int64(0), user.Credits())
		totals, _ := uow.GetCreditUsageRepository(ctx).TotalsByUser(ctx, "user-1")
		assert.Equal(t, int64(0), totals.Granted)
	})

	t.Run("should settle once under concurrent units", func(t *testing.T) {
		// Arrange
		_, uow, tp := newFixture(t)
		_, err := uow.GetUserRepository(ctx).EnsureExists(ctx, "user-1", "")
		require.NoError(t, err)
		createPending(t, uow, tp, "txn-1", "TOPUP-1")

		var wg sync.WaitGroup
		var mu sync.Mutex
		wins := 0

		// Act
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = uow.Execute(ctx, func(ctx context.Context) error {
					ok, err := uow.GetTransactionRepository(ctx).MarkPaid(ctx, "txn-1", tp.Now(), "QRIS", entity.StatusPending)
					if err != nil || !ok {
						return err
					}
					if _, err := uow.GetUserRepository(ctx).IncrementCredits(ctx, "user-1", 5); err != nil {
						return err
					}
					mu.Lock()
					wins++
					mu.Unlock()
					return nil
				})
			}()
		}
		wg.Wait()

		// Assert
		assert.Equal(t, 1, wins)
		user, _ := uow.GetUserRepository(ctx).GetByID(ctx, "user-1")
		assert.Equal(t, int64(5), user.Credits())
	})

	t.Run("should require an open unit for commit and rollback", func(t *testing.T) {
		_, uow, _ := newFixture(t)

		assert.Error(t, uow.Commit(ctx))
		assert.Error(t, uow.Rollback(ctx))

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		_, err = uow.Begin(txCtx)
		assert.Error(t, err)
		require.NoError(t, uow.Commit(txCtx))
	})
}

func TestTransactionRepository_FindByExternalID(t *testing.T) {
	ctx := context.Background()
	_, uow, tp := newFixture(t)
	createPending(t, uow, tp, "txn-1", "TOPUP-1700000000000-aaaa1111")
	createPending(t, uow, tp, "txn-2", "TOPUP-1700000000000-bbbb2222")
	repo := uow.GetTransactionRepository(ctx)

	t.Run("should prefer the exact match", func(t *testing.T) {
		txn, err := repo.FindByExternalID(ctx, "TOPUP-1700000000000-aaaa1111", 12)
		require.NoError(t, err)
		assert.Equal(t, "txn-1", txn.ID)
	})

	t.Run("should fall back to a unique containment", func(t *testing.T) {
		txn, err := repo.FindByExternalID(ctx, "1700000000000-bbbb2222", 12)
		require.NoError(t, err)
		assert.Equal(t, "txn-2", txn.ID)
	})

	t.Run("should refuse ambiguous and short references", func(t *testing.T) {
		_, err := repo.FindByExternalID(ctx, "TOPUP-1700000000000", 12)
		assert.ErrorIs(t, err, errs.ErrAmbiguousExternalID)

		_, err = repo.FindByExternalID(ctx, "aaaa1111", 12)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

		_, err = repo.FindByExternalID(ctx, "1700000000000-bbbb2222", 0)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestTransactionRepository_ConditionalUpdates(t *testing.T) {
	ctx := context.Background()

	t.Run("should accept one amount correction", func(t *testing.T) {
		// Arrange
		_, uow, tp := newFixture(t)
		createPending(t, uow, tp, "txn-1", "TOPUP-1")
		repo := uow.GetTransactionRepository(ctx)
		first, second := int64(5007), int64(5011)

		// Act
		firstErr := repo.UpdateAfterCreate(ctx, "txn-1", entity.TransactionPatch{Amount: &first})
		secondErr := repo.UpdateAfterCreate(ctx, "txn-1", entity.TransactionPatch{Amount: &second})

		// Assert
		require.NoError(t, firstErr)
		assert.ErrorIs(t, secondErr, errs.ErrAmountAlreadyCorrected)
		txn, _ := repo.GetByID(ctx, "txn-1")
		assert.Equal(t, int64(5007), txn.Amount)
	})

	t.Run("should move out of pending only once", func(t *testing.T) {
		// Arrange
		_, uow, tp := newFixture(t)
		createPending(t, uow, tp, "txn-1", "TOPUP-1")
		repo := uow.GetTransactionRepository(ctx)

		// Act
		expired, _ := repo.TransitionFromPending(ctx, "txn-1", entity.StatusExpired)
		failed, _ := repo.TransitionFromPending(ctx, "txn-1", entity.StatusFailed)
		paidFromPending, _ := repo.MarkPaid(ctx, "txn-1", tp.Now(), "QRIS", entity.StatusPending)
		paidFromExpired, _ := repo.MarkPaid(ctx, "txn-1", tp.Now(), "QRIS", entity.StatusPending, entity.StatusExpired)

		// Assert
		assert.True(t, expired)
		assert.False(t, failed)
		assert.False(t, paidFromPending)
		assert.True(t, paidFromExpired)
	})

	t.Run("should refuse a duplicate external id", func(t *testing.T) {
		_, uow, tp := newFixture(t)
		createPending(t, uow, tp, "txn-1", "TOPUP-1")

		txn, err := entity.NewTransaction("txn-2", "TOPUP-1", "user-1", "starter", 5000, "qrispolling", tp)
		require.NoError(t, err)

		assert.ErrorIs(t, uow.GetTransactionRepository(ctx).Create(ctx, txn), errs.ErrDuplicateExternalID)
	})
}

func TestUserAndUsageRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep balances non-negative", func(t *testing.T) {
		// Arrange
		_, uow, _ := newFixture(t)
		users := uow.GetUserRepository(ctx)
		_, err := users.EnsureExists(ctx, "user-1", "")
		require.NoError(t, err)
		_, err = users.IncrementCredits(ctx, "user-1", 2)
		require.NoError(t, err)

		// Act
		left, err := users.DecrementCredits(ctx, "user-1", 3)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Equal(t, int64(2), left)
	})

	t.Run("should refuse a second grant for a transaction", func(t *testing.T) {
		// Arrange
		_, uow, tp := newFixture(t)
		usages := uow.GetCreditUsageRepository(ctx)
		require.NoError(t, usages.Append(ctx, entity.NewGrant("g-1", "user-1", "txn-1", 5, 5, tp.Now())))

		// Act
		err := usages.Append(ctx, entity.NewGrant("g-2", "user-1", "txn-1", 5, 10, tp.Now()))

		// Assert
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("should list history newest first", func(t *testing.T) {
		_, uow, tp := newFixture(t)
		usages := uow.GetCreditUsageRepository(ctx)
		require.NoError(t, usages.Append(ctx, entity.NewGrant("g-1", "user-1", "txn-1", 5, 5, tp.Now())))
		require.NoError(t, usages.Append(ctx, entity.NewDebit("d-1", "user-1", "chat", nil, 1, 4, tp.Now())))

		history, err := usages.ListByUser(ctx, "user-1", 10)

		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "d-1", history[0].ID)
	})
}

func TestPackageAndWebhookRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("should list active packages in display order", func(t *testing.T) {
		store, _, _ := newFixture(t)
		packages := store.PackageRepository()
		require.NoError(t, packages.Upsert(ctx, &entity.CreditPackage{ID: "b", Name: "B", Credits: 2, Price: 2000, Active: true, SortOrder: 2}))
		require.NoError(t, packages.Upsert(ctx, &entity.CreditPackage{ID: "a", Name: "A", Credits: 1, Price: 1000, Active: true, SortOrder: 1}))
		require.NoError(t, packages.Upsert(ctx, &entity.CreditPackage{ID: "c", Name: "C", Credits: 3, Price: 3000, Active: false, SortOrder: 0}))

		active, err := packages.ListActive(ctx)

		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, "a", active[0].ID)
		assert.Error(t, packages.Upsert(ctx, &entity.CreditPackage{ID: "bad"}))
	})

	t.Run("should record and mark webhook deliveries", func(t *testing.T) {
		store, _, tp := newFixture(t)
		webhooks := store.WebhookEventRepository()
		body := []byte(`{"status":"PAID"}`)
		require.NoError(t, webhooks.Record(ctx, &entity.WebhookEvent{ID: "wh-1", ExternalID: "TOPUP-1", Payload: body, ReceivedAt: tp.Now()}))
		body[0] = 'x'

		require.NoError(t, webhooks.MarkProcessed(ctx, "wh-1", entity.WebhookSettled, "", tp.Now()))
		events, err := webhooks.ListByExternalID(ctx, "TOPUP-1")

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, `{"status":"PAID"}`, string(events[0].Payload))
		assert.Equal(t, entity.WebhookSettled, events[0].Result)
		assert.Error(t, webhooks.MarkProcessed(ctx, "ghost", entity.WebhookSettled, "", tp.Now()))
	})
}
