package dto

import "time"

// WebhookResponse acknowledges a delivery to the provider
type WebhookResponse struct {
	Received   bool   `json:"received"`
	Result     string `json:"result"`
	ExternalID string `json:"externalId,omitempty"`
	Status     string `json:"status,omitempty"`
}

// DeliveryResponse is one inbox row for a top-up. The raw payload stays server-side.
type DeliveryResponse struct {
	ID              string     `json:"id"`
	Provider        string     `json:"provider"`
	ReportedStatus  string     `json:"reportedStatus,omitempty"`
	SignatureValid  bool       `json:"signatureValid"`
	Result          string     `json:"result"`
	ProcessingError string     `json:"processingError,omitempty"`
	ReceivedAt      time.Time  `json:"receivedAt"`
	ProcessedAt     *time.Time `json:"processedAt,omitempty"`
}
