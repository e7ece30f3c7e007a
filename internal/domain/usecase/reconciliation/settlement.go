package reconciliation

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

// settlement is the result of one atomic settle attempt
type settlement struct {
	won          bool
	current      *entity.Transaction // set when the conditional update matched nothing
	balanceAfter int64
}

// Settler applies the PAID transition, the credit increment and the grant row as one unit
type Settler struct {
	uow          persistence.UnitOfWork
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
}

// NewSettler creates a new Settler
func NewSettler(uow persistence.UnitOfWork, ids coreport.IDGenerator, timeProvider coreport.TimeProvider) *Settler {
	return &Settler{
		uow:          uow,
		ids:          ids,
		timeProvider: timeProvider,
	}
}

// Settle runs the conditional status update and, only if it matched, credits the owner.
// Any failure rolls the whole unit back and leaves the transaction in its prior status.
func (s *Settler) Settle(
	ctx context.Context,
	txn *entity.Transaction,
	credits int64,
	paidAt time.Time,
	method string,
	from []entity.TransactionStatus,
) (*settlement, error) {
	var out *settlement

	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		out = &settlement{}

		txRepo := s.uow.GetTransactionRepository(txCtx)
		won, err := txRepo.MarkPaid(txCtx, txn.ID, paidAt, method, from...)
		if err != nil {
			return errs.NewReconciliationError(txn.ExternalID, "mark_paid", err)
		}
		if !won {
			current, err := txRepo.GetByIDForUpdate(txCtx, txn.ID)
			if err != nil {
				return errs.NewReconciliationError(txn.ExternalID, "reload", err)
			}
			out.current = current
			return nil
		}

		balance, err := s.uow.GetUserRepository(txCtx).IncrementCredits(txCtx, txn.UserID, credits)
		if err != nil {
			return errs.NewReconciliationError(txn.ExternalID, "increment_credits", err)
		}

		grant := entity.NewGrant(s.ids.NewID(), txn.UserID, txn.ID, credits, balance, s.timeProvider.Now())
		if err := s.uow.GetCreditUsageRepository(txCtx).Append(txCtx, grant); err != nil {
			return errs.NewReconciliationError(txn.ExternalID, "append_grant", err)
		}

		out.won = true
		out.balanceAfter = balance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
