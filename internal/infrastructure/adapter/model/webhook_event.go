package model

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookEvent is the inbox row written for every inbound provider delivery
type WebhookEvent struct {
	ID              string         `gorm:"primaryKey;size:64"`
	Provider        string         `gorm:"not null;size:32;index"`
	ExternalID      string         `gorm:"size:128;index"`
	ReportedStatus  string         `gorm:"size:32"`
	Payload         datatypes.JSON `gorm:"type:jsonb"`
	RawPayload      string         `gorm:"type:text"`
	SignatureValid  bool           `gorm:"not null;default:false"`
	Result          string         `gorm:"not null;size:32"`
	ProcessingError string         `gorm:"type:text"`
	ReceivedAt      time.Time      `gorm:"not null;index"`
	ProcessedAt     *time.Time
}

// TableName specifies the table name for WebhookEvent
func (WebhookEvent) TableName() string {
	return "webhook_events"
}
