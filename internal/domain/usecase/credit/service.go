package credit

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// Config holds the flat per-action cost table
type Config struct {
	Costs        map[string]int64
	HistoryLimit int
}

// DefaultCosts is the cost table used when none is configured
func DefaultCosts() map[string]int64 {
	return map[string]int64{
		"diagnosis": 1,
		"chat":      1,
	}
}

// Service is the usage side of the credit ledger
type Service struct {
	uow          persistence.UnitOfWork
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.CreditUseCase = (*Service)(nil)

// NewService creates a new credit service
func NewService(
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if len(config.Costs) == 0 {
		config.Costs = DefaultCosts()
	}
	if config.HistoryLimit <= 0 {
		config.HistoryLimit = 50
	}

	return &Service{
		uow:          uow,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// GetBalance returns the user's credits; unknown users have none
func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return user.Credits(), nil
}

// CheckCredits reports whether the user can currently afford action
func (s *Service) CheckCredits(ctx context.Context, userID, action string) (bool, int64, error) {
	cost, err := s.costOf(action)
	if err != nil {
		return false, 0, err
	}
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return false, 0, err
	}
	return balance >= cost, balance, nil
}

// Deduct charges the flat cost of action. The conditional decrement and its debit row
// commit together; an unaffordable debit changes nothing.
func (s *Service) Deduct(ctx context.Context, userID, action string, sessionID *string) (*usecase.DeductResult, error) {
	cost, err := s.costOf(action)
	if err != nil {
		return nil, err
	}

	var remaining int64
	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		balance, err := s.uow.GetUserRepository(txCtx).DecrementCredits(txCtx, userID, cost)
		if err != nil {
			return err
		}

		debit := entity.NewDebit(s.ids.NewID(), userID, action, sessionID, cost, balance, s.timeProvider.Now())
		if err := s.uow.GetCreditUsageRepository(txCtx).Append(txCtx, debit); err != nil {
			return err
		}
		remaining = balance
		return nil
	})
	if err != nil {
		if errs.IsInsufficientCreditsError(err) {
			s.logger.Info("Debit rejected", errs.LogFields(err))
		}
		return nil, err
	}

	s.logger.Debug("Credits deducted", map[string]any{
		"user_id":   userID,
		"action":    action,
		"cost":      cost,
		"remaining": remaining,
	})

	return &usecase.DeductResult{
		Action:    action,
		Deducted:  cost,
		Remaining: remaining,
	}, nil
}

// History returns the user's latest audit rows
func (s *Service) History(ctx context.Context, userID string, limit int) ([]*entity.CreditUsage, error) {
	if limit <= 0 || limit > s.config.HistoryLimit {
		limit = s.config.HistoryLimit
	}
	return s.uow.GetCreditUsageRepository(ctx).ListByUser(ctx, userID, limit)
}

// Audit rebuilds the balance from the audit log and compares it with the stored balance.
// Both reads share one snapshot so a grant committing in between cannot skew the comparison.
func (s *Service) Audit(ctx context.Context, userID string) (entity.LedgerAudit, error) {
	var audit entity.LedgerAudit

	err := s.uow.Snapshot(ctx, func(txCtx context.Context) error {
		balance, err := s.GetBalance(txCtx, userID)
		if err != nil {
			return err
		}
		totals, err := s.uow.GetCreditUsageRepository(txCtx).TotalsByUser(txCtx, userID)
		if err != nil {
			return err
		}
		audit = entity.NewLedgerAudit(userID, balance, totals)
		return nil
	})
	if err != nil {
		return entity.LedgerAudit{}, err
	}

	if !audit.Consistent {
		s.logger.Error("Ledger audit mismatch", map[string]any{
			"user_id":       userID,
			"balance":       audit.Balance,
			"reconstructed": audit.Reconstructed,
		})
	}
	return audit, nil
}

func (s *Service) costOf(action string) (int64, error) {
	cost, ok := s.config.Costs[action]
	if !ok || cost <= 0 {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidAction, action)
	}
	return cost, nil
}
