package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// Outcome names what applying a payment event did
type Outcome string

// Outcome constants
const (
	OutcomeSettled          Outcome = "settled"
	OutcomeAlreadyProcessed Outcome = "already_processed"
	OutcomeExpired          Outcome = "expired"
	OutcomeFailed           Outcome = "failed"
	OutcomeNoop             Outcome = "noop"
	OutcomeLateRejected     Outcome = "late_payment_rejected"
)

// ReconcileResult is the state after a payment event was applied
type ReconcileResult struct {
	Outcome        Outcome
	Transaction    *entity.Transaction
	CreditsGranted int64
	BalanceAfter   int64
}

// ReconciliationUseCase is the single entrypoint shared by webhooks and polls
type ReconciliationUseCase interface {
	Apply(ctx context.Context, event entity.PaymentEvent) (*ReconcileResult, error)
}
