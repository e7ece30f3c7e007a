package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
)

func TestKafka_NotifyPaymentSuccess(t *testing.T) {
	event := notification.PaymentSuccess{UserID: "user-1", ExternalID: "TOPUP-1", Credits: 12, Timestamp: paidAt}

	t.Run("should publish a record keyed by user", func(t *testing.T) {
		// Arrange
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			assert.Equal(t, DefaultKafkaTopic, msg.Topic)
			key, err := msg.Key.Encode()
			require.NoError(t, err)
			assert.Equal(t, "user-1", string(key))

			raw, err := msg.Value.Encode()
			require.NoError(t, err)
			var record paymentSuccessRecord
			require.NoError(t, json.Unmarshal(raw, &record))
			assert.Equal(t, "TOPUP-1", record.ExternalID)
			assert.Equal(t, int64(12), record.Credits)
			return nil
		})
		k := NewKafka(producer, "", logger.NewNoopLogger())

		// Act
		err := k.NotifyPaymentSuccess(context.Background(), event)

		// Assert
		require.NoError(t, err)
		require.NoError(t, k.Close())
	})

	t.Run("should return broker failures", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)
		k := NewKafka(producer, "ledger.payments", logger.NewNoopLogger())

		err := k.NotifyPaymentSuccess(context.Background(), event)

		assert.ErrorIs(t, err, sarama.ErrNotLeaderForPartition)
		require.NoError(t, k.Close())
	})

	t.Run("should not send after the context is done", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		k := NewKafka(producer, "", logger.NewNoopLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := k.NotifyPaymentSuccess(ctx, event)

		assert.True(t, errors.Is(err, context.Canceled))
		require.NoError(t, k.Close())
	})
}
