package topup

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/payment"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// Config holds the top-up settings
type Config struct {
	ExternalIDPrefix string
	HistoryLimit     int
}

// Service creates top-ups and serves the client-driven status poll
type Service struct {
	uow          persistence.UnitOfWork
	packages     persistence.CreditPackageRepository
	inbox        persistence.WebhookEventRepository
	providers    payment.Registry
	reconciler   usecase.ReconciliationUseCase
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.TopUpUseCase = (*Service)(nil)

// NewService creates a new top-up service
func NewService(
	uow persistence.UnitOfWork,
	packages persistence.CreditPackageRepository,
	inbox persistence.WebhookEventRepository,
	providers payment.Registry,
	reconciler usecase.ReconciliationUseCase,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if config.ExternalIDPrefix == "" {
		config.ExternalIDPrefix = "TOPUP"
	}
	if config.HistoryLimit <= 0 {
		config.HistoryLimit = 10
	}

	return &Service{
		uow:          uow,
		packages:     packages,
		inbox:        inbox,
		providers:    providers,
		reconciler:   reconciler,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// CreateTopUp records a PENDING transaction, asks the default provider for a payment
// and stores the provider's corrected amount and display payload on it.
func (s *Service) CreateTopUp(ctx context.Context, userID, email, packageID string) (*usecase.TopUpResult, error) {
	if userID == "" || packageID == "" {
		return nil, fmt.Errorf("%w: user id and package id are required", errs.ErrInvalidRequest)
	}

	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, fmt.Errorf("%w: %s is not on sale", errs.ErrPackageNotFound, packageID)
	}

	if _, err := s.uow.GetUserRepository(ctx).EnsureExists(ctx, userID, email); err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}

	provider := s.providers.Default()
	now := s.timeProvider.Now()
	txn, err := entity.NewTransaction(
		s.ids.NewID(),
		s.ids.NewReference(s.config.ExternalIDPrefix, now),
		userID,
		pkg.ID,
		pkg.Price,
		provider.Name(),
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	txRepo := s.uow.GetTransactionRepository(ctx)
	if err := txRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	created, err := provider.CreatePayment(ctx, payment.CreatePaymentRequest{
		ExternalID:  txn.ExternalID,
		Amount:      txn.Amount,
		Description: fmt.Sprintf("%s (%d credits)", pkg.Name, pkg.Credits),
		PayerEmail:  email,
		Metadata: map[string]string{
			"user_id":    userID,
			"package_id": pkg.ID,
		},
	})
	if err != nil {
		s.failCreation(ctx, txn, err)
		if !errors.Is(err, errs.ErrProvider) {
			err = errs.NewProviderError(provider.Name(), "create_payment", 0, "", err)
		}
		return nil, err
	}

	patch := entity.TransactionPatch{
		DisplayPayload: &created.DisplayPayload,
		DisplayType:    &created.DisplayType,
		ProviderRef:    &created.ProviderRef,
		ExpiresAt:      created.ExpiresAt,
	}
	if created.ExpectedAmount > 0 && created.ExpectedAmount != txn.Amount {
		patch.Amount = &created.ExpectedAmount
	}
	if err := txn.ApplyPatch(patch, s.timeProvider); err != nil {
		return nil, err
	}
	if err := s.storeProviderPayment(ctx, txRepo, txn, patch); err != nil {
		return nil, err
	}

	s.logger.Info("Top-up created", map[string]any{
		"external_id":      txn.ExternalID,
		"user_id":          userID,
		"package_id":       pkg.ID,
		"provider":         provider.Name(),
		"amount":           txn.Amount,
		"amount_corrected": txn.AmountCorrected,
	})

	return &usecase.TopUpResult{
		ExternalID:     txn.ExternalID,
		Amount:         txn.Amount,
		DisplayPayload: txn.DisplayPayload,
		DisplayType:    txn.DisplayType,
		ExpiresAt:      txn.ExpiresAt,
		Provider:       txn.Provider,
	}, nil
}

// failCreation closes a transaction whose provider call failed so it is never left dangling
func (s *Service) failCreation(ctx context.Context, txn *entity.Transaction, cause error) {
	fields := errs.LogFields(cause)
	fields["external_id"] = txn.ExternalID
	fields["user_id"] = txn.UserID
	s.logger.Error("Provider rejected top-up", fields)

	if _, err := s.uow.GetTransactionRepository(ctx).TransitionFromPending(ctx, txn.ID, entity.StatusFailed); err != nil {
		s.logger.Error("Failed to mark top-up as failed", map[string]any{
			"external_id": txn.ExternalID,
			"error":       err.Error(),
		})
	}
}

// storeProviderPayment writes the post-create patch, retrying once. The patch is idempotent
// for the same amount. A transaction a webhook already moved on keeps its settled state.
func (s *Service) storeProviderPayment(ctx context.Context, txRepo persistence.TransactionRepository, txn *entity.Transaction, patch entity.TransactionPatch) error {
	err := txRepo.UpdateAfterCreate(ctx, txn.ID, patch)
	if err != nil && !errors.Is(err, errs.ErrInvalidStatusTransition) {
		err = txRepo.UpdateAfterCreate(ctx, txn.ID, patch)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		s.logger.Warn("Top-up settled before its provider data was stored", map[string]any{
			"external_id":  txn.ExternalID,
			"provider":     txn.Provider,
			"provider_ref": txn.ProviderRef,
		})
		return nil
	default:
		s.logger.Error("Failed to store provider payment", map[string]any{
			"external_id":     txn.ExternalID,
			"user_id":         txn.UserID,
			"provider":        txn.Provider,
			"provider_ref":    txn.ProviderRef,
			"expected_amount": txn.Amount,
			"error":           err.Error(),
		})
		return fmt.Errorf("failed to store provider payment: %w", err)
	}
}

// CheckStatus asks the provider about an outstanding transaction and feeds the answer
// through the reconciliation engine. Settled or closed transactions are answered from the store.
func (s *Service) CheckStatus(ctx context.Context, userID, externalID string) (*usecase.StatusResult, error) {
	if externalID == "" {
		return nil, fmt.Errorf("%w: external id is required", errs.ErrInvalidRequest)
	}

	txn, err := s.uow.GetTransactionRepository(ctx).FindByExternalID(ctx, externalID, 0)
	if err != nil {
		return nil, err
	}
	// Someone else's transaction looks exactly like a missing one.
	if !txn.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: %s", errs.ErrTransactionNotFound, externalID)
	}
	if txn.Status.IsTerminal() {
		return toStatusResult(txn), nil
	}

	provider, err := s.providers.Get(txn.Provider)
	if err != nil {
		return nil, err
	}

	status, err := provider.CheckStatus(ctx, payment.StatusQuery{
		ProviderRef: txn.ProviderRef,
		ExternalID:  txn.ExternalID,
		Amount:      txn.Amount,
	})
	if err != nil {
		s.logger.Warn("Provider status check failed", mergeFields(errs.LogFields(err), map[string]any{
			"external_id": txn.ExternalID,
		}))
		return nil, err
	}

	reported := status.Status
	if reported == entity.StatusPending && txn.IsExpiredAt(s.timeProvider.Now()) {
		// The provider may keep an order open past the expiry we showed the payer.
		reported = entity.StatusExpired
		s.logger.Info("Top-up expired while polling", map[string]any{
			"external_id": txn.ExternalID,
			"expires_at":  txn.ExpiresAt,
		})
	}

	result, err := s.reconciler.Apply(ctx, entity.PaymentEvent{
		ExternalID:  txn.ExternalID,
		Status:      reported,
		PaidAt:      status.PaidAt,
		Method:      status.Method,
		Amount:      status.Amount,
		ProviderRef: txn.ProviderRef,
		Provider:    txn.Provider,
		Source:      entity.SourcePoll,
	})
	if err != nil {
		return nil, err
	}
	return toStatusResult(result.Transaction), nil
}

// ListTransactions returns the caller's latest top-ups, newest first
func (s *Service) ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 || limit > s.config.HistoryLimit {
		limit = s.config.HistoryLimit
	}
	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, limit)
}

// ListDeliveries returns the provider webhooks received for one of the caller's top-ups
func (s *Service) ListDeliveries(ctx context.Context, userID, externalID string) ([]*entity.WebhookEvent, error) {
	if externalID == "" {
		return nil, fmt.Errorf("%w: external id is required", errs.ErrInvalidRequest)
	}

	txn, err := s.uow.GetTransactionRepository(ctx).FindByExternalID(ctx, externalID, 0)
	if err != nil {
		return nil, err
	}
	if !txn.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: %s", errs.ErrTransactionNotFound, externalID)
	}
	return s.inbox.ListByExternalID(ctx, txn.ExternalID)
}

// ListPackages returns the catalog on sale
func (s *Service) ListPackages(ctx context.Context) ([]*entity.CreditPackage, error) {
	return s.packages.ListActive(ctx)
}

func toStatusResult(txn *entity.Transaction) *usecase.StatusResult {
	return &usecase.StatusResult{
		ExternalID: txn.ExternalID,
		Status:     txn.Status,
		PaidAt:     txn.PaidAt,
		Amount:     txn.Amount,
	}
}

func mergeFields(base, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
