package notification

import (
	"context"
	"fmt"
	"time"
)

// EventPaymentSuccess is the only event type pushed to clients
const EventPaymentSuccess = "payment-success"

// UserChannel is the per-user real-time topic name
func UserChannel(userID string) string {
	return fmt.Sprintf("user-%s", userID)
}

// PaymentSuccess is the payload of a payment-success event
type PaymentSuccess struct {
	UserID     string    `json:"-"`
	ExternalID string    `json:"-"`
	Credits    int64     `json:"credits"`
	Timestamp  time.Time `json:"timestamp"`
}

// Message is what a subscriber receives on a user channel
type Message struct {
	Channel string
	Event   string
	Data    []byte
}

// Notifier pushes a fire-and-forget event to a user's channel.
// Delivery is at most once; callers log failures and move on.
type Notifier interface {
	NotifyPaymentSuccess(ctx context.Context, event PaymentSuccess) error
}

// Subscriber streams the events published to one user channel until ctx is done
type Subscriber interface {
	Subscribe(ctx context.Context, userID string) (<-chan Message, error)
}
