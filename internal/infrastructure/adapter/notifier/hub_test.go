package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
)

var paidAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func receive(t *testing.T, ch <-chan notification.Message) notification.Message {
	t.Helper()
	select {
	case msg, ok := <-ch:
		require.True(t, ok, "channel closed")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
		return notification.Message{}
	}
}

func TestHub(t *testing.T) {
	t.Run("should deliver to every subscriber of the user only", func(t *testing.T) {
		// Arrange
		hub := NewHub(logger.NewNoopLogger())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		first, err := hub.Subscribe(ctx, "user-1")
		require.NoError(t, err)
		second, err := hub.Subscribe(ctx, "user-1")
		require.NoError(t, err)
		other, err := hub.Subscribe(ctx, "user-2")
		require.NoError(t, err)

		// Act
		err = hub.NotifyPaymentSuccess(ctx, notification.PaymentSuccess{UserID: "user-1", ExternalID: "TOPUP-1", Credits: 12, Timestamp: paidAt})

		// Assert
		require.NoError(t, err)
		for _, ch := range []<-chan notification.Message{first, second} {
			msg := receive(t, ch)
			assert.Equal(t, "user-user-1", msg.Channel)
			assert.Equal(t, notification.EventPaymentSuccess, msg.Event)
			var data map[string]any
			require.NoError(t, json.Unmarshal(msg.Data, &data))
			assert.Equal(t, float64(12), data["credits"])
			assert.NotContains(t, data, "ExternalID")
		}
		assert.Empty(t, other)
	})

	t.Run("should unsubscribe when the context ends", func(t *testing.T) {
		hub := NewHub(logger.NewNoopLogger())
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := hub.Subscribe(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, 1, hub.Subscribers("user-1"))

		cancel()

		assert.Eventually(t, func() bool { return hub.Subscribers("user-1") == 0 }, time.Second, 10*time.Millisecond)
		_, ok := <-ch
		assert.False(t, ok)
		assert.NoError(t, hub.NotifyPaymentSuccess(context.Background(), notification.PaymentSuccess{UserID: "user-1", Credits: 1}))
	})

	t.Run("should drop events for a subscriber that is not draining", func(t *testing.T) {
		rec := logger.NewRecordingLogger()
		hub := NewHub(rec)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		_, err := hub.Subscribe(ctx, "user-1")
		require.NoError(t, err)

		for i := 0; i < subscriberBuffer+1; i++ {
			require.NoError(t, hub.NotifyPaymentSuccess(ctx, notification.PaymentSuccess{UserID: "user-1", Credits: 1}))
		}

		assert.True(t, rec.Has(coreport.LogLevelWarn, "Slow subscribers missed an event"))
	})
}
