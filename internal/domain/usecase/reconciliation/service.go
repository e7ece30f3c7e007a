package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// LatePaymentPolicy decides what happens to a settlement for a transaction that already expired
type LatePaymentPolicy string

// LatePaymentPolicy values
const (
	// LatePaymentReject leaves the transaction EXPIRED and grants nothing
	LatePaymentReject LatePaymentPolicy = "reject"
	// LatePaymentHonor reactivates EXPIRED transactions into PAID; FAILED is never reactivated
	LatePaymentHonor LatePaymentPolicy = "honor"
)

// ParseLatePaymentPolicy validates a config value
func ParseLatePaymentPolicy(s string) (LatePaymentPolicy, error) {
	switch LatePaymentPolicy(s) {
	case "", LatePaymentReject:
		return LatePaymentReject, nil
	case LatePaymentHonor:
		return LatePaymentHonor, nil
	default:
		return "", fmt.Errorf("%w: unknown late payment policy %q", errs.ErrInvalidRequest, s)
	}
}

// Config holds the engine settings
type Config struct {
	LatePaymentPolicy      LatePaymentPolicy
	MinContainsMatchLength int
	NotifyTimeout          time.Duration
}

// DefaultConfig returns the settings used when none are configured
func DefaultConfig() Config {
	return Config{
		LatePaymentPolicy:      LatePaymentReject,
		MinContainsMatchLength: 12,
		NotifyTimeout:          3 * time.Second,
	}
}

// Engine is the single code path that turns payment events into ledger changes.
// Webhook handlers and the status poller both call Apply.
type Engine struct {
	uow          persistence.UnitOfWork
	packages     persistence.CreditPackageRepository
	resolver     *Resolver
	settler      *Settler
	notifier     notification.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.ReconciliationUseCase = (*Engine)(nil)

// NewEngine creates a new reconciliation engine
func NewEngine(
	uow persistence.UnitOfWork,
	packages persistence.CreditPackageRepository,
	notifier notification.Notifier,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Engine {
	if config.NotifyTimeout <= 0 {
		config.NotifyTimeout = DefaultConfig().NotifyTimeout
	}
	if config.LatePaymentPolicy == "" {
		config.LatePaymentPolicy = LatePaymentReject
	}

	return &Engine{
		uow:          uow,
		packages:     packages,
		resolver:     NewResolver(uow, logger, config.MinContainsMatchLength),
		settler:      NewSettler(uow, ids, timeProvider),
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Apply reconciles one normalized payment event.
// It never mutates anything when the event can't be resolved, and settling is idempotent.
func (e *Engine) Apply(ctx context.Context, event entity.PaymentEvent) (*usecase.ReconcileResult, error) {
	if event.ExternalID == "" {
		return nil, fmt.Errorf("%w: payment event without external id", errs.ErrInvalidRequest)
	}

	txn, err := e.resolver.Resolve(ctx, event.ExternalID)
	if err != nil {
		e.logger.Warn("Payment event could not be resolved", map[string]any{
			"external_id": event.ExternalID,
			"status":      event.Status,
			"source":      event.Source,
			"provider":    event.Provider,
			"error":       err.Error(),
		})
		return nil, err
	}

	if event.Provider != "" && txn.Provider != "" && event.Provider != txn.Provider {
		e.logger.Warn("Payment event provider does not match transaction", map[string]any{
			"external_id":          txn.ExternalID,
			"event_provider":       event.Provider,
			"transaction_provider": txn.Provider,
		})
		return nil, fmt.Errorf("%w: no %s transaction for %q", errs.ErrTransactionNotFound, event.Provider, event.ExternalID)
	}

	var result *usecase.ReconcileResult
	switch event.Status {
	case entity.StatusPending:
		result = &usecase.ReconcileResult{Outcome: usecase.OutcomeNoop, Transaction: txn}
	case entity.StatusExpired, entity.StatusFailed:
		result, err = e.close(ctx, txn, event.Status)
	case entity.StatusPaid:
		result, err = e.settle(ctx, txn, event)
	default:
		return nil, fmt.Errorf("%w: unsupported event status %q", errs.ErrInvalidRequest, event.Status)
	}
	if err != nil {
		e.logger.Error("Payment event reconciliation failed", mergeFields(errs.LogFields(err), map[string]any{
			"external_id": txn.ExternalID,
			"user_id":     txn.UserID,
			"source":      event.Source,
		}))
		return nil, err
	}

	e.logger.Info("Payment event reconciled", map[string]any{
		"external_id":     txn.ExternalID,
		"user_id":         txn.UserID,
		"source":          event.Source,
		"provider":        txn.Provider,
		"reported_status": event.Status,
		"outcome":         result.Outcome,
		"status":          result.Transaction.Status,
	})
	return result, nil
}

// close handles EXPIRED and FAILED reports
func (e *Engine) close(ctx context.Context, txn *entity.Transaction, to entity.TransactionStatus) (*usecase.ReconcileResult, error) {
	if txn.Status != entity.StatusPending {
		return &usecase.ReconcileResult{Outcome: usecase.OutcomeNoop, Transaction: txn}, nil
	}

	repo := e.uow.GetTransactionRepository(ctx)
	changed, err := repo.TransitionFromPending(ctx, txn.ID, to)
	if err != nil {
		return nil, errs.NewReconciliationError(txn.ExternalID, "transition", err)
	}
	if !changed {
		current, err := repo.GetByID(ctx, txn.ID)
		if err != nil {
			return nil, errs.NewReconciliationError(txn.ExternalID, "reload", err)
		}
		return &usecase.ReconcileResult{Outcome: usecase.OutcomeNoop, Transaction: current}, nil
	}

	if err := txn.TransitionTo(to, e.timeProvider); err != nil {
		return nil, err
	}
	outcome := usecase.OutcomeExpired
	if to == entity.StatusFailed {
		outcome = usecase.OutcomeFailed
	}
	return &usecase.ReconcileResult{Outcome: outcome, Transaction: txn}, nil
}

// settle handles PAID reports
func (e *Engine) settle(ctx context.Context, txn *entity.Transaction, event entity.PaymentEvent) (*usecase.ReconcileResult, error) {
	if txn.Status == entity.StatusPaid {
		return &usecase.ReconcileResult{Outcome: usecase.OutcomeAlreadyProcessed, Transaction: txn}, nil
	}
	if !e.acceptsSettlementFrom(txn.Status) {
		e.rejectLate(txn, event)
		return &usecase.ReconcileResult{Outcome: usecase.OutcomeLateRejected, Transaction: txn}, nil
	}

	pkg, err := e.packages.GetByID(ctx, txn.PackageID)
	if err != nil {
		return nil, errs.NewReconciliationError(txn.ExternalID, "load_package", err)
	}

	if event.Amount > 0 && event.Amount != txn.Amount {
		e.logger.Warn("Reported amount differs from transaction amount", map[string]any{
			"external_id":     txn.ExternalID,
			"reported_amount": event.Amount,
			"amount":          txn.Amount,
		})
	}

	now := e.timeProvider.Now()
	paidAt := event.PaidAtOr(now)
	from := []entity.TransactionStatus{entity.StatusPending}
	if e.config.LatePaymentPolicy == LatePaymentHonor {
		from = append(from, entity.StatusExpired)
	}

	out, err := e.settler.Settle(ctx, txn, pkg.Credits, paidAt, event.Method, from)
	if err != nil {
		return nil, err
	}

	if !out.won {
		if out.current.Status == entity.StatusPaid {
			return &usecase.ReconcileResult{Outcome: usecase.OutcomeAlreadyProcessed, Transaction: out.current}, nil
		}
		e.rejectLate(out.current, event)
		return &usecase.ReconcileResult{Outcome: usecase.OutcomeLateRejected, Transaction: out.current}, nil
	}

	if err := txn.MarkPaid(paidAt, event.Method, true, e.timeProvider); err != nil {
		return nil, err
	}

	e.notify(ctx, notification.PaymentSuccess{
		UserID:     txn.UserID,
		ExternalID: txn.ExternalID,
		Credits:    pkg.Credits,
		Timestamp:  now,
	})

	return &usecase.ReconcileResult{
		Outcome:        usecase.OutcomeSettled,
		Transaction:    txn,
		CreditsGranted: pkg.Credits,
		BalanceAfter:   out.balanceAfter,
	}, nil
}

func (e *Engine) acceptsSettlementFrom(status entity.TransactionStatus) bool {
	switch status {
	case entity.StatusPending:
		return true
	case entity.StatusExpired:
		return e.config.LatePaymentPolicy == LatePaymentHonor
	default:
		return false
	}
}

// rejectLate logs a settlement that will not be credited; an operator has to refund or credit by hand
func (e *Engine) rejectLate(txn *entity.Transaction, event entity.PaymentEvent) {
	e.logger.Error("Settlement rejected for non-pending transaction", map[string]any{
		"external_id":     txn.ExternalID,
		"user_id":         txn.UserID,
		"status":          txn.Status,
		"source":          event.Source,
		"reported_amount": event.Amount,
		"policy":          e.config.LatePaymentPolicy,
	})
}

// notify is best-effort: the grant is already committed
func (e *Engine) notify(ctx context.Context, event notification.PaymentSuccess) {
	if e.notifier == nil {
		return
	}

	nctx, cancel := e.timeProvider.WithTimeout(context.WithoutCancel(ctx), e.config.NotifyTimeout)
	defer cancel()

	if err := e.notifier.NotifyPaymentSuccess(nctx, event); err != nil {
		e.logger.Warn("Payment success notification failed", map[string]any{
			"user_id":     event.UserID,
			"external_id": event.ExternalID,
			"error":       err.Error(),
		})
	}
}

func mergeFields(base, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
