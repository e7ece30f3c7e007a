package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
)

type countingNotifier struct {
	calls int
	err   error
}

func (c *countingNotifier) NotifyPaymentSuccess(context.Context, notification.PaymentSuccess) error {
	c.calls++
	return c.err
}

func TestMulti(t *testing.T) {
	t.Run("should try every notifier and join failures", func(t *testing.T) {
		broken := errors.New("redis down")
		first := &countingNotifier{err: broken}
		second := &countingNotifier{}

		err := Multi{first, second, Noop{}}.NotifyPaymentSuccess(context.Background(), notification.PaymentSuccess{UserID: "u"})

		assert.ErrorIs(t, err, broken)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 1, second.calls)
	})

	t.Run("should succeed when empty", func(t *testing.T) {
		assert.NoError(t, Multi(nil).NotifyPaymentSuccess(context.Background(), notification.PaymentSuccess{}))
	})
}
