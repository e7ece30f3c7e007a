package credit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/memory"
	clock "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
	"github.com/amirhossein-jamali/credit-ledger/mocks/port/persistence"
)

type ledger struct {
	uow     *memory.UnitOfWork
	clock   *clock.FixedTimeProvider
	service *Service
}

// newLedger seeds userID with credits through a real grant so the audit log starts consistent
func newLedger(t *testing.T, userID string, credits int64) *ledger {
	t.Helper()
	ctx := context.Background()

	fixed := clock.NewFixedTimeProvider(time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC))
	store := memory.NewStore(fixed)
	uow := memory.NewUnitOfWork(store)

	_, err := uow.GetUserRepository(ctx).EnsureExists(ctx, userID, "")
	require.NoError(t, err)
	if credits > 0 {
		balance, err := uow.GetUserRepository(ctx).IncrementCredits(ctx, userID, credits)
		require.NoError(t, err)
		require.NoError(t, uow.GetCreditUsageRepository(ctx).Append(ctx,
			entity.NewGrant("seed", userID, "seed-txn", credits, balance, fixed.Now())))
	}

	return &ledger{
		uow:     uow,
		clock:   fixed,
		service: NewService(uow, idgen.NewUUIDGenerator(), fixed, logger.NewNoopLogger(), Config{}),
	}
}

func TestCreditService_Deduct(t *testing.T) {
	ctx := context.Background()

	t.Run("should debit the flat action cost and write a debit row", func(t *testing.T) {
		// Arrange
		l := newLedger(t, "user-1", 3)
		session := "session-9"

		// Act
		result, err := l.service.Deduct(ctx, "user-1", "diagnosis", &session)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Deducted)
		assert.Equal(t, int64(2), result.Remaining)

		history, err := l.service.History(ctx, "user-1", 0)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, entity.UsageDebit, history[0].Kind)
		assert.Equal(t, "diagnosis", history[0].Action)
		assert.Equal(t, int64(2), history[0].BalanceAfter)
		require.NotNil(t, history[0].SessionID)
		assert.Equal(t, "session-9", *history[0].SessionID)
	})

	t.Run("should refuse a debit that would go negative and change nothing", func(t *testing.T) {
		// Arrange
		l := newLedger(t, "user-2", 0)

		// Act
		result, err := l.service.Deduct(ctx, "user-2", "chat", nil)

		// Assert
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		balance, err := l.service.GetBalance(ctx, "user-2")
		require.NoError(t, err)
		assert.Zero(t, balance)
		history, err := l.service.History(ctx, "user-2", 0)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("should reject unknown actions", func(t *testing.T) {
		l := newLedger(t, "user-3", 5)

		_, err := l.service.Deduct(ctx, "user-3", "teleport", nil)

		assert.ErrorIs(t, err, errs.ErrInvalidAction)
	})

	t.Run("should never overdraw under concurrent debits", func(t *testing.T) {
		// Arrange
		l := newLedger(t, "user-4", 10)
		const attempts = 25

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded, refused := 0, 0

		// Act
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := l.service.Deduct(ctx, "user-4", "chat", nil)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, errs.ErrInsufficientCredits):
					refused++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		// Assert
		assert.Equal(t, 10, succeeded)
		assert.Equal(t, attempts-10, refused)
		balance, err := l.service.GetBalance(ctx, "user-4")
		require.NoError(t, err)
		assert.Zero(t, balance)
	})
}

func TestCreditService_Audit(t *testing.T) {
	ctx := context.Background()

	t.Run("should reconstruct the balance from grants and debits", func(t *testing.T) {
		// Arrange
		l := newLedger(t, "user-1", 7)
		for i := 0; i < 3; i++ {
			_, err := l.service.Deduct(ctx, "user-1", "diagnosis", nil)
			require.NoError(t, err)
		}
		_, err := l.service.Deduct(ctx, "user-1", "chat", nil)
		require.NoError(t, err)

		// Act
		audit, err := l.service.Audit(ctx, "user-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), audit.Balance)
		assert.Equal(t, int64(7), audit.Granted)
		assert.Equal(t, int64(4), audit.Debited)
		assert.Equal(t, int64(3), audit.Reconstructed)
		assert.True(t, audit.Consistent)
	})

	t.Run("should flag a balance changed outside the ledger", func(t *testing.T) {
		// Arrange
		l := newLedger(t, "user-2", 2)
		_, err := l.uow.GetUserRepository(ctx).IncrementCredits(ctx, "user-2", 5)
		require.NoError(t, err)

		// Act
		audit, err := l.service.Audit(ctx, "user-2")

		// Assert
		require.NoError(t, err)
		assert.False(t, audit.Consistent)
		assert.Equal(t, int64(7), audit.Balance)
		assert.Equal(t, int64(2), audit.Reconstructed)
	})

	t.Run("should read the balance and the totals from one snapshot", func(t *testing.T) {
		// Arrange
		type snapshotKey struct{}
		mockUoW := persistence.NewMockUnitOfWork(t)
		mockUserRepo := persistence.NewMockUserRepository(t)
		mockUsageRepo := persistence.NewMockCreditUsageRepository(t)
		inSnapshot := mock.MatchedBy(func(c context.Context) bool { return c.Value(snapshotKey{}) != nil })

		mockUoW.EXPECT().Snapshot(ctx, mock.Anything).RunAndReturn(func(c context.Context, fn func(context.Context) error) error {
			return fn(context.WithValue(c, snapshotKey{}, true))
		}).Once()
		mockUoW.EXPECT().GetUserRepository(inSnapshot).Return(mockUserRepo).Once()
		mockUoW.EXPECT().GetCreditUsageRepository(inSnapshot).Return(mockUsageRepo).Once()
		mockUserRepo.EXPECT().GetByID(inSnapshot, "user-1").
			Return(entity.RestoreUser("user-1", "", 9, time.Time{}, time.Time{}), nil).Once()
		mockUsageRepo.EXPECT().TotalsByUser(inSnapshot, "user-1").
			Return(entity.UsageTotals{Granted: 10, Debited: 1}, nil).Once()

		service := NewService(mockUoW, new(core.MockIDGenerator), new(core.MockTimeProvider), logger.NewNoopLogger(), Config{})

		// Act
		audit, err := service.Audit(ctx, "user-1")

		// Assert
		require.NoError(t, err)
		assert.True(t, audit.Consistent)
		mockUoW.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}

func TestCreditService_CheckCredits(t *testing.T) {
	ctx := context.Background()

	t.Run("should report unknown users as having no credits", func(t *testing.T) {
		// Arrange
		mockUoW := new(persistence.MockUnitOfWork)
		mockUserRepo := new(persistence.MockUserRepository)
		mockIDs := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUoW.On("GetUserRepository", ctx).Return(mockUserRepo)
		mockUserRepo.On("GetByID", ctx, "ghost").Return(nil, errs.ErrUserNotFound)

		service := NewService(mockUoW, mockIDs, mockTimeProvider, mockLogger, Config{})

		// Act
		ok, balance, err := service.CheckCredits(ctx, "ghost", "diagnosis")

		// Assert
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, balance)
		mockUoW.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should use the configured cost table", func(t *testing.T) {
		// Arrange
		mockUoW := new(persistence.MockUnitOfWork)
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		user := entity.RestoreUser("user-1", "", 4, time.Time{}, time.Time{})
		mockUoW.On("GetUserRepository", ctx).Return(mockUserRepo)
		mockUserRepo.On("GetByID", ctx, "user-1").Return(user, nil)

		service := NewService(mockUoW, new(core.MockIDGenerator), new(core.MockTimeProvider), mockLogger,
			Config{Costs: map[string]int64{"report": 5}})

		// Act
		ok, balance, err := service.CheckCredits(ctx, "user-1", "report")

		// Assert
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(4), balance)

		_, _, err = service.CheckCredits(ctx, "user-1", "diagnosis")
		assert.ErrorIs(t, err, errs.ErrInvalidAction)
	})

	t.Run("should surface repository failures", func(t *testing.T) {
		mockUoW := new(persistence.MockUnitOfWork)
		mockUserRepo := new(persistence.MockUserRepository)

		mockUoW.On("GetUserRepository", mock.Anything).Return(mockUserRepo)
		mockUserRepo.On("GetByID", mock.Anything, "user-1").Return(nil, errs.ErrDatabaseConnection)

		service := NewService(mockUoW, new(core.MockIDGenerator), new(core.MockTimeProvider), new(core.MockLogger), Config{})

		_, _, err := service.CheckCredits(ctx, "user-1", "chat")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
