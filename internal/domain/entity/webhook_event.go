package entity

import (
	"time"
)

// WebhookResult records what the service did with an inbound webhook
type WebhookResult string

// WebhookResult constants
const (
	WebhookReceived     WebhookResult = "received"
	WebhookSettled      WebhookResult = "settled"
	WebhookDuplicate    WebhookResult = "already_processed"
	WebhookExpired      WebhookResult = "expired"
	WebhookFailed       WebhookResult = "failed"
	WebhookNoop         WebhookResult = "noop"
	WebhookIgnored      WebhookResult = "ignored"
	WebhookRejectedLate WebhookResult = "late_payment_rejected"
	WebhookUnauthorized WebhookResult = "unauthorized"
	WebhookNotFound     WebhookResult = "not_found"
	WebhookInvalid      WebhookResult = "invalid"
	WebhookError        WebhookResult = "error"
)

// WebhookEvent is an inbox row for one inbound provider delivery
type WebhookEvent struct {
	ID              string
	Provider        string
	ExternalID      string
	ReportedStatus  string
	Payload         []byte
	SignatureValid  bool
	Result          WebhookResult
	ProcessingError string
	ReceivedAt      time.Time
	ProcessedAt     *time.Time
}
