package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// DeductResult is returned after a successful debit
type DeductResult struct {
	Action    string
	Deducted  int64
	Remaining int64
}

// CreditUseCase covers the usage side of the ledger
type CreditUseCase interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	CheckCredits(ctx context.Context, userID, action string) (bool, int64, error)
	Deduct(ctx context.Context, userID, action string, sessionID *string) (*DeductResult, error)
	History(ctx context.Context, userID string, limit int) ([]*entity.CreditUsage, error)
	Audit(ctx context.Context, userID string) (entity.LedgerAudit, error)
}
