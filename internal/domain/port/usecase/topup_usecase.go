package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// TopUpResult is returned to the client after a payment was created
type TopUpResult struct {
	ExternalID     string
	Amount         int64
	DisplayPayload string
	DisplayType    entity.DisplayType
	ExpiresAt      *time.Time
	Provider       string
}

// StatusResult is returned to a polling client
type StatusResult struct {
	ExternalID string
	Status     entity.TransactionStatus
	PaidAt     *time.Time
	Amount     int64
}

// TopUpUseCase covers creating and polling top-ups
type TopUpUseCase interface {
	CreateTopUp(ctx context.Context, userID, email, packageID string) (*TopUpResult, error)
	CheckStatus(ctx context.Context, userID, externalID string) (*StatusResult, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)
	ListDeliveries(ctx context.Context, userID, externalID string) ([]*entity.WebhookEvent, error)
	ListPackages(ctx context.Context) ([]*entity.CreditPackage, error)
}
