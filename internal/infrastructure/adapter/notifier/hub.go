package notifier

import (
	"context"
	"sync"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
)

const subscriberBuffer = 16

// Hub is the single-process channel backend used when Redis is disabled.
// A subscriber that is not draining loses events instead of blocking the publisher.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[chan notification.Message]struct{}
	logger coreport.Logger
}

var (
	_ notification.Notifier   = (*Hub)(nil)
	_ notification.Subscriber = (*Hub)(nil)
)

// NewHub creates an empty hub
func NewHub(logger coreport.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]map[chan notification.Message]struct{}),
		logger: logger,
	}
}

// NotifyPaymentSuccess delivers to every current subscriber of the user's channel
func (h *Hub) NotifyPaymentSuccess(_ context.Context, event notification.PaymentSuccess) error {
	data, _, err := encodePaymentSuccess(event)
	if err != nil {
		return err
	}

	channel := notification.UserChannel(event.UserID)
	msg := notification.Message{Channel: channel, Event: notification.EventPaymentSuccess, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0
	for sub := range h.subs[channel] {
		select {
		case sub <- msg:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		h.logger.Warn("Slow subscribers missed an event", map[string]any{
			"channel": channel,
			"dropped": dropped,
		})
	}
	return nil
}

// Subscribe registers a channel that is closed and removed when ctx ends
func (h *Hub) Subscribe(ctx context.Context, userID string) (<-chan notification.Message, error) {
	channel := notification.UserChannel(userID)
	sub := make(chan notification.Message, subscriberBuffer)

	h.mu.Lock()
	if h.subs[channel] == nil {
		h.subs[channel] = make(map[chan notification.Message]struct{})
	}
	h.subs[channel][sub] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs[channel], sub)
		if len(h.subs[channel]) == 0 {
			delete(h.subs, channel)
		}
		h.mu.Unlock()
		close(sub)
	}()

	return sub, nil
}

// Subscribers reports how many listeners a user currently has
func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[notification.UserChannel(userID)])
}
