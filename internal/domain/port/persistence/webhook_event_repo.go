package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// WebhookEventRepository is the inbox of raw provider deliveries
type WebhookEventRepository interface {
	Record(ctx context.Context, event *entity.WebhookEvent) error
	MarkProcessed(ctx context.Context, id string, result entity.WebhookResult, processingError string, at time.Time) error
	ListByExternalID(ctx context.Context, externalID string) ([]*entity.WebhookEvent, error)
}
