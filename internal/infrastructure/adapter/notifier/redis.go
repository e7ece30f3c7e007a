package notifier

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

// NewRedisClient connects and pings so a bad address fails at startup
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Redis publishes events on per-user pub/sub channels and streams them back to subscribers.
// Pub/sub keeps nothing for absent listeners, which matches at-most-once delivery.
type Redis struct {
	client *redis.Client
	logger coreport.Logger
}

var (
	_ notification.Notifier   = (*Redis)(nil)
	_ notification.Subscriber = (*Redis)(nil)
)

// NewRedis wraps a connected client
func NewRedis(client *redis.Client, logger coreport.Logger) *Redis {
	return &Redis{client: client, logger: logger}
}

// NotifyPaymentSuccess publishes to user-{id}
func (r *Redis) NotifyPaymentSuccess(ctx context.Context, event notification.PaymentSuccess) error {
	_, payload, err := encodePaymentSuccess(event)
	if err != nil {
		return err
	}

	channel := notification.UserChannel(event.UserID)
	receivers, err := r.client.Publish(ctx, channel, payload).Result()
	if err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}

	r.logger.Debug("Published payment-success", map[string]any{
		"channel":     channel,
		"external_id": event.ExternalID,
		"receivers":   receivers,
	})
	return nil
}

// Subscribe confirms the subscription before returning so no event published afterwards is missed
func (r *Redis) Subscribe(ctx context.Context, userID string) (<-chan notification.Message, error) {
	channel := notification.UserChannel(userID)
	pubsub := r.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("redis subscribe %s: %w", channel, err)
	}

	out := make(chan notification.Message, subscriberBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		in := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				decoded, err := decodeEnvelope(msg.Channel, msg.Payload)
				if err != nil {
					r.logger.Warn("Dropping undecodable message", map[string]any{
						"channel": msg.Channel,
						"error":   err.Error(),
					})
					continue
				}
				select {
				case out <- decoded:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Name identifies the component in health reports
func (r *Redis) Name() string { return "redis" }

// Check pings the server for readiness probes
func (r *Redis) Check(ctx context.Context) (map[string]any, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	stats := r.client.PoolStats()
	return map[string]any{
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
	}, nil
}
