//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
)

func TestTransactionRepository_Integration(t *testing.T) {
	tp := timeprovider.NewRealTimeProvider()
	log := logger.NewNoopLogger()
	testDB := database.SetupTestDatabase(t, log, tp)
	repo := repository.NewTransactionRepository(testDB.Manager.DB(), tp, log)
	ctx := context.Background()

	create := func(t *testing.T, id, externalID string) *entity.Transaction {
		t.Helper()
		txn, err := entity.NewTransaction(id, externalID, "user-1", "starter", 5000, "qrispolling", tp)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, txn))
		return txn
	}

	reset := func(t *testing.T) {
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 0)
	}

	t.Run("should refuse a duplicate external id", func(t *testing.T) {
		// Arrange
		reset(t)
		create(t, "txn-1", "TOPUP-1700000000000-aaaa1111")

		// Act
		txn, _ := entity.NewTransaction("txn-2", "TOPUP-1700000000000-aaaa1111", "user-1", "starter", 5000, "qrispolling", tp)
		err := repo.Create(ctx, txn)

		// Assert
		assert.ErrorIs(t, err, errs.ErrDuplicateExternalID)
	})

	t.Run("should resolve external ids exactly then by unique containment", func(t *testing.T) {
		// Arrange
		reset(t)
		create(t, "txn-1", "TOPUP-1700000000000-aaaa1111")
		create(t, "txn-2", "TOPUP-1700000000000-bbbb2222")

		// Act
		exact, exactErr := repo.FindByExternalID(ctx, "TOPUP-1700000000000-aaaa1111", 12)
		contained, containedErr := repo.FindByExternalID(ctx, "1700000000000-bbbb2222", 12)
		_, ambiguousErr := repo.FindByExternalID(ctx, "TOPUP-1700000000000", 12)
		_, shortErr := repo.FindByExternalID(ctx, "bbbb2222", 12)
		_, wildcardErr := repo.FindByExternalID(ctx, "TOPUP-%-bbbb2222", 12)

		// Assert
		require.NoError(t, exactErr)
		assert.Equal(t, "txn-1", exact.ID)
		require.NoError(t, containedErr)
		assert.Equal(t, "txn-2", contained.ID)
		assert.ErrorIs(t, ambiguousErr, errs.ErrAmbiguousExternalID)
		assert.ErrorIs(t, shortErr, errs.ErrTransactionNotFound)
		assert.ErrorIs(t, wildcardErr, errs.ErrTransactionNotFound)
	})

	t.Run("should accept one amount correction while pending", func(t *testing.T) {
		// Arrange
		reset(t)
		create(t, "txn-1", "TOPUP-1700000000000-aaaa1111")
		corrected := int64(5007)
		again := int64(5011)
		payload := "00020101021226"
		displayType := entity.DisplayQRString

		// Act
		firstErr := repo.UpdateAfterCreate(ctx, "txn-1", entity.TransactionPatch{Amount: &corrected, DisplayPayload: &payload, DisplayType: &displayType})
		resendErr := repo.UpdateAfterCreate(ctx, "txn-1", entity.TransactionPatch{Amount: &corrected})
		secondErr := repo.UpdateAfterCreate(ctx, "txn-1", entity.TransactionPatch{Amount: &again})

		// Assert
		require.NoError(t, firstErr)
		require.NoError(t, resendErr)
		assert.ErrorIs(t, secondErr, errs.ErrAmountAlreadyCorrected)
		stored, err := repo.GetByID(ctx, "txn-1")
		require.NoError(t, err)
		assert.Equal(t, int64(5007), stored.Amount)
		assert.True(t, stored.AmountCorrected)
		assert.Equal(t, payload, stored.DisplayPayload)
	})

	t.Run("should not patch a settled transaction", func(t *testing.T) {
		// Arrange
		reset(t)
		create(t, "txn-1", "TOPUP-1700000000000-aaaa1111")
		ok, err := repo.MarkPaid(ctx, "txn-1", time.Now().UTC(), "QRIS", entity.StatusPending)
		require.NoError(t, err)
		require.True(t, ok)
		ref := "late-ref"

		// Act
		err = repo.UpdateAfterCreate(ctx, "txn-1", entity.TransactionPatch{ProviderRef: &ref})

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})

	t.Run("should mark paid only from the allowed statuses", func(t *testing.T) {
		// Arrange
		reset(t)
		create(t, "txn-1", "TOPUP-1700000000000-aaaa1111")
		paidAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		expired, err := repo.TransitionFromPending(ctx, "txn-1", entity.StatusExpired)
		require.NoError(t, err)
		require.True(t, expired)

		// Act
		fromPending, pendingErr := repo.MarkPaid(ctx, "txn-1", paidAt, "QRIS", entity.StatusPending)
		fromExpired, expiredErr := repo.MarkPaid(ctx, "txn-1", paidAt, "QRIS", entity.StatusPending, entity.StatusExpired)
		twice, twiceErr := repo.MarkPaid(ctx, "txn-1", paidAt.Add(time.Hour), "OVO", entity.StatusPending, entity.StatusExpired)
		_, missingErr := repo.MarkPaid(ctx, "missing", paidAt, "QRIS")

		// Assert
		require.NoError(t, pendingErr)
		assert.False(t, fromPending)
		require.NoError(t, expiredErr)
		assert.True(t, fromExpired)
		require.NoError(t, twiceErr)
		assert.False(t, twice)
		assert.ErrorIs(t, missingErr, errs.ErrTransactionNotFound)

		stored, err := repo.GetByID(ctx, "txn-1")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPaid, stored.Status)
		assert.Equal(t, "QRIS", stored.PaymentMethod)
		assert.True(t, paidAt.Equal(*stored.PaidAt))
	})

	t.Run("should only leave pending once", func(t *testing.T) {
		// Arrange
		reset(t)
		create(t, "txn-1", "TOPUP-1700000000000-aaaa1111")

		// Act
		first, firstErr := repo.TransitionFromPending(ctx, "txn-1", entity.StatusFailed)
		second, secondErr := repo.TransitionFromPending(ctx, "txn-1", entity.StatusExpired)
		_, paidErr := repo.TransitionFromPending(ctx, "txn-1", entity.StatusPaid)

		// Assert
		require.NoError(t, firstErr)
		assert.True(t, first)
		require.NoError(t, secondErr)
		assert.False(t, second)
		assert.ErrorIs(t, paidErr, errs.ErrInvalidStatusTransition)
	})

	t.Run("should list a user's transactions newest first", func(t *testing.T) {
		// Arrange
		reset(t)
		create(t, "txn-1", "TOPUP-1700000000000-aaaa1111")
		time.Sleep(5 * time.Millisecond)
		create(t, "txn-2", "TOPUP-1700000000001-bbbb2222")

		// Act
		list, err := repo.ListByUser(ctx, "user-1", 10)

		// Assert
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "txn-2", list[0].ID)
	})
}

func TestUserRepository_Integration(t *testing.T) {
	tp := timeprovider.NewRealTimeProvider()
	log := logger.NewNoopLogger()
	testDB := database.SetupTestDatabase(t, log, tp)
	repo := repository.NewUserRepository(testDB.Manager.DB(), tp, log)
	ctx := context.Background()

	t.Run("should create a user once with a zero balance", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)

		// Act
		first, firstErr := repo.EnsureExists(ctx, "user-1", "a@example.com")
		_, incErr := repo.IncrementCredits(ctx, "user-1", 4)
		second, secondErr := repo.EnsureExists(ctx, "user-1", "b@example.com")

		// Assert
		require.NoError(t, firstErr)
		require.NoError(t, incErr)
		require.NoError(t, secondErr)
		assert.Equal(t, int64(0), first.Credits())
		assert.Equal(t, int64(4), second.Credits())
	})

	t.Run("should return the balance after each change", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 2)

		// Act
		afterGrant, grantErr := repo.IncrementCredits(ctx, "user-1", 10)
		afterDebit, debitErr := repo.DecrementCredits(ctx, "user-1", 3)
		left, overdrawErr := repo.DecrementCredits(ctx, "user-1", 100)

		// Assert
		require.NoError(t, grantErr)
		assert.Equal(t, int64(12), afterGrant)
		require.NoError(t, debitErr)
		assert.Equal(t, int64(9), afterDebit)
		assert.ErrorIs(t, overdrawErr, errs.ErrInsufficientCredits)
		assert.Equal(t, int64(9), left)
	})

	t.Run("should report unknown users", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)

		// Act
		_, getErr := repo.GetByID(ctx, "ghost")
		_, incErr := repo.IncrementCredits(ctx, "ghost", 1)
		_, decErr := repo.DecrementCredits(ctx, "ghost", 1)

		// Assert
		assert.ErrorIs(t, getErr, errs.ErrUserNotFound)
		assert.ErrorIs(t, incErr, errs.ErrUserNotFound)
		assert.ErrorIs(t, decErr, errs.ErrUserNotFound)
	})
}

func TestCreditUsageAndWebhookRepositories_Integration(t *testing.T) {
	tp := timeprovider.NewRealTimeProvider()
	log := logger.NewNoopLogger()
	testDB := database.SetupTestDatabase(t, log, tp)
	usages := repository.NewCreditUsageRepository(testDB.Manager.DB(), log)
	webhooks := repository.NewWebhookEventRepository(testDB.Manager.DB(), log)
	ctx := context.Background()

	t.Run("should total grants and debits", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		testDB.CreateUser(t, "user-1", 0)
		now := time.Now().UTC()
		session := "session-1"
		require.NoError(t, usages.Append(ctx, entity.NewDebit("u-1", "user-1", "diagnosis", &session, 1, 11, now)))
		require.NoError(t, usages.Append(ctx, entity.NewDebit("u-2", "user-1", "chat", nil, 2, 9, now.Add(time.Second))))

		// Act
		totals, err := usages.TotalsByUser(ctx, "user-1")
		history, historyErr := usages.ListByUser(ctx, "user-1", 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(0), totals.Granted)
		assert.Equal(t, int64(3), totals.Debited)
		require.NoError(t, historyErr)
		require.Len(t, history, 1)
		assert.Equal(t, "u-2", history[0].ID)
	})

	t.Run("should keep non-JSON webhook bodies verbatim", func(t *testing.T) {
		// Arrange
		testDB.Truncate(t)
		now := time.Now().UTC()
		require.NoError(t, webhooks.Record(ctx, &entity.WebhookEvent{
			ID: "wh-1", Provider: "trakteer", ExternalID: "TOPUP-1", Payload: []byte("not json"),
			Result: entity.WebhookReceived, ReceivedAt: now,
		}))
		require.NoError(t, webhooks.Record(ctx, &entity.WebhookEvent{
			ID: "wh-2", Provider: "trakteer", ExternalID: "TOPUP-1", Payload: []byte(`{"status":"PAID"}`),
			Result: entity.WebhookReceived, ReceivedAt: now.Add(time.Second),
		}))

		// Act
		markErr := webhooks.MarkProcessed(ctx, "wh-2", entity.WebhookSettled, "", now.Add(2*time.Second))
		events, err := webhooks.ListByExternalID(ctx, "TOPUP-1")

		// Assert
		require.NoError(t, markErr)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "not json", string(events[0].Payload))
		assert.JSONEq(t, `{"status":"PAID"}`, string(events[1].Payload))
		assert.Equal(t, entity.WebhookSettled, events[1].Result)
		assert.NotNil(t, events[1].ProcessedAt)
	})

	t.Run("should fail to mark an unknown webhook", func(t *testing.T) {
		err := webhooks.MarkProcessed(ctx, "ghost", entity.WebhookSettled, "", time.Now())
		assert.Error(t, err)
	})
}
