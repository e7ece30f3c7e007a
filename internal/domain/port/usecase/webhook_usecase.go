package usecase

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// WebhookResult is acknowledged back to the provider
type WebhookResult struct {
	Result     entity.WebhookResult
	ExternalID string
	Status     entity.TransactionStatus
}

// WebhookUseCase records, authenticates and reconciles inbound provider deliveries
type WebhookUseCase interface {
	HandleWebhook(ctx context.Context, provider string, headers http.Header, body []byte) (*WebhookResult, error)
}
