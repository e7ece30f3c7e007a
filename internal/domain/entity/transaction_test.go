package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
)

func newClock(t *testing.T, now time.Time) *core.MockTimeProvider {
	tp := core.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(now).Maybe()
	return tp
}

func pendingTransaction(t *testing.T, tp *core.MockTimeProvider) *Transaction {
	txn, err := NewTransaction("txn-1", "TOPUP-1", "user-1", "pkg-10", 10000, "qrispolling", tp)
	require.NoError(t, err)
	return txn
}

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tp := newClock(t, fixedTime)

	t.Run("should start pending", func(t *testing.T) {
		txn := pendingTransaction(t, tp)

		assert.Equal(t, StatusPending, txn.Status)
		assert.Equal(t, fixedTime, txn.CreatedAt)
		assert.False(t, txn.AmountCorrected)
		assert.Nil(t, txn.PaidAt)
	})

	t.Run("should validate required fields", func(t *testing.T) {
		cases := []struct {
			name               string
			id, ext, user, pkg string
			amount             int64
		}{
			{"missing id", "", "E", "u", "p", 1},
			{"missing external id", "i", "", "u", "p", 1},
			{"missing user", "i", "E", "", "p", 1},
			{"missing package", "i", "E", "u", "", 1},
			{"zero amount", "i", "E", "u", "p", 0},
		}
		for _, c := range cases {
			_, err := NewTransaction(c.id, c.ext, c.user, c.pkg, c.amount, "x", tp)
			assert.ErrorIs(t, err, errs.ErrInvalidRequest, c.name)
		}
	})
}

func TestTransactionStatus(t *testing.T) {
	t.Run("should parse case-insensitively", func(t *testing.T) {
		s, err := ParseTransactionStatus(" paid ")
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, s)

		_, err = ParseTransactionStatus("REFUNDED")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should only allow transitions out of pending", func(t *testing.T) {
		assert.True(t, StatusPending.CanTransitionTo(StatusPaid))
		assert.True(t, StatusPending.CanTransitionTo(StatusExpired))
		assert.True(t, StatusPending.CanTransitionTo(StatusFailed))
		assert.False(t, StatusPending.CanTransitionTo(StatusPending))
		for _, from := range []TransactionStatus{StatusPaid, StatusExpired, StatusFailed} {
			assert.True(t, from.IsTerminal())
			for _, to := range []TransactionStatus{StatusPending, StatusPaid, StatusExpired, StatusFailed} {
				assert.False(t, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})
}

func TestTransaction_ApplyPatch(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tp := newClock(t, fixedTime)

	t.Run("should apply one amount correction", func(t *testing.T) {
		txn := pendingTransaction(t, tp)
		corrected := int64(10007)
		ref := "poll-1"

		require.NoError(t, txn.ApplyPatch(TransactionPatch{Amount: &corrected, ProviderRef: &ref}, tp))
		assert.Equal(t, int64(10007), txn.Amount)
		assert.True(t, txn.AmountCorrected)
		assert.Equal(t, "poll-1", txn.ProviderRef)

		again := int64(10011)
		err := txn.ApplyPatch(TransactionPatch{Amount: &again}, tp)
		assert.ErrorIs(t, err, errs.ErrAmountAlreadyCorrected)
		assert.Equal(t, int64(10007), txn.Amount)

		// Re-sending the same amount is not a second correction.
		assert.NoError(t, txn.ApplyPatch(TransactionPatch{Amount: &corrected}, tp))
	})

	t.Run("should treat an equal amount as no correction", func(t *testing.T) {
		txn := pendingTransaction(t, tp)
		same := int64(10000)

		require.NoError(t, txn.ApplyPatch(TransactionPatch{Amount: &same}, tp))
		assert.False(t, txn.AmountCorrected)
	})

	t.Run("should refuse patches after settlement", func(t *testing.T) {
		txn := pendingTransaction(t, tp)
		require.NoError(t, txn.MarkPaid(fixedTime, "QRIS", false, tp))
		payload := "late"

		err := txn.ApplyPatch(TransactionPatch{DisplayPayload: &payload}, tp)

		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Empty(t, txn.DisplayPayload)
	})

	t.Run("should copy the expiry", func(t *testing.T) {
		txn := pendingTransaction(t, tp)
		expires := fixedTime.Add(15 * time.Minute)

		require.NoError(t, txn.ApplyPatch(TransactionPatch{ExpiresAt: &expires}, tp))
		expires = expires.Add(time.Hour)

		assert.Equal(t, fixedTime.Add(15*time.Minute), *txn.ExpiresAt)
		assert.False(t, txn.IsExpiredAt(fixedTime))
		assert.True(t, txn.IsExpiredAt(fixedTime.Add(15*time.Minute)))
	})
}

func TestTransaction_MarkPaid(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tp := newClock(t, fixedTime)

	t.Run("should set paid fields once", func(t *testing.T) {
		txn := pendingTransaction(t, tp)

		require.NoError(t, txn.MarkPaid(fixedTime, "QRIS", false, tp))
		assert.Equal(t, StatusPaid, txn.Status)
		assert.Equal(t, "QRIS", txn.PaymentMethod)

		err := txn.MarkPaid(fixedTime.Add(time.Minute), "OVO", false, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, fixedTime, *txn.PaidAt)
	})

	t.Run("should reactivate expired only when allowed", func(t *testing.T) {
		txn := pendingTransaction(t, tp)
		require.NoError(t, txn.TransitionTo(StatusExpired, tp))

		assert.ErrorIs(t, txn.MarkPaid(fixedTime, "QRIS", false, tp), errs.ErrInvalidStatusTransition)
		assert.NoError(t, txn.MarkPaid(fixedTime, "QRIS", true, tp))
	})

	t.Run("should never reactivate failed", func(t *testing.T) {
		txn := pendingTransaction(t, tp)
		require.NoError(t, txn.TransitionTo(StatusFailed, tp))

		assert.ErrorIs(t, txn.MarkPaid(fixedTime, "QRIS", true, tp), errs.ErrInvalidStatusTransition)
	})

	t.Run("should not use TransitionTo for payment", func(t *testing.T) {
		txn := pendingTransaction(t, tp)

		assert.ErrorIs(t, txn.TransitionTo(StatusPaid, tp), errs.ErrInvalidStatusTransition)
	})
}
