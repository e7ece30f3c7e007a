package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

// DefaultKafkaTopic carries one record per settled top-up
const DefaultKafkaTopic = "payment.success"

// NewKafkaProducer creates a sync producer that waits for all in-sync replicas
func NewKafkaProducer(cfg config.KafkaConfig) (sarama.SyncProducer, error) {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Producer.Return.Successes = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka producer %v: %w", cfg.Brokers, err)
	}
	return producer, nil
}

type paymentSuccessRecord struct {
	UserID     string    `json:"userId"`
	ExternalID string    `json:"externalId"`
	Credits    int64     `json:"credits"`
	Timestamp  time.Time `json:"timestamp"`
}

// Kafka publishes payment successes for downstream consumers, keyed by user so
// one user's events stay ordered within a partition
type Kafka struct {
	producer sarama.SyncProducer
	topic    string
	logger   coreport.Logger
}

var _ notification.Notifier = (*Kafka)(nil)

// NewKafka wraps a producer; an empty topic falls back to payment.success
func NewKafka(producer sarama.SyncProducer, topic string, logger coreport.Logger) *Kafka {
	if topic == "" {
		topic = DefaultKafkaTopic
	}
	return &Kafka{producer: producer, topic: topic, logger: logger}
}

// NotifyPaymentSuccess sends one record. SendMessage has no context, so ctx only short-circuits.
func (k *Kafka) NotifyPaymentSuccess(ctx context.Context, event notification.PaymentSuccess) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(paymentSuccessRecord{
		UserID:     event.UserID,
		ExternalID: event.ExternalID,
		Credits:    event.Credits,
		Timestamp:  event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("encode payment.success: %w", err)
	}

	partition, offset, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(event.UserID),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("kafka send %s: %w", k.topic, err)
	}

	k.logger.Debug("Published payment.success", map[string]any{
		"topic":       k.topic,
		"partition":   partition,
		"offset":      offset,
		"external_id": event.ExternalID,
	})
	return nil
}

// Close flushes and closes the producer
func (k *Kafka) Close() error {
	return k.producer.Close()
}
