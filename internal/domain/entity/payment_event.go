package entity

import (
	"time"
)

// EventSource identifies which path produced a payment event
type EventSource string

// EventSource constants
const (
	SourceWebhook EventSource = "webhook"
	SourcePoll    EventSource = "poll"
)

// PaymentEvent is a provider report normalized at the adapter boundary
type PaymentEvent struct {
	ExternalID  string
	Status      TransactionStatus
	PaidAt      *time.Time
	Method      string
	Amount      int64 // reported amount, 0 if the provider didn't send one
	ProviderRef string
	Provider    string
	Source      EventSource
}

// IsSettled reports whether the event claims funds were received
func (e PaymentEvent) IsSettled() bool {
	return e.Status == StatusPaid
}

// PaidAtOr returns the reported settlement time or fallback
func (e PaymentEvent) PaidAtOr(fallback time.Time) time.Time {
	if e.PaidAt != nil && !e.PaidAt.IsZero() {
		return *e.PaidAt
	}
	return fallback
}
