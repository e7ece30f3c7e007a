package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(t *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:              t.ID,
		ExternalID:      t.ExternalID,
		UserID:          t.UserID,
		PackageID:       t.PackageID,
		Amount:          t.Amount,
		AmountCorrected: t.AmountCorrected,
		Status:          string(t.Status),
		Provider:        t.Provider,
		ProviderRef:     t.ProviderRef,
		DisplayPayload:  t.DisplayPayload,
		DisplayType:     string(t.DisplayType),
		ExpiresAt:       t.ExpiresAt,
		PaidAt:          t.PaidAt,
		PaymentMethod:   t.PaymentMethod,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		ExternalID:      m.ExternalID,
		UserID:          m.UserID,
		PackageID:       m.PackageID,
		Amount:          m.Amount,
		AmountCorrected: m.AmountCorrected,
		Status:          entity.TransactionStatus(m.Status),
		Provider:        m.Provider,
		ProviderRef:     m.ProviderRef,
		DisplayPayload:  m.DisplayPayload,
		DisplayType:     entity.DisplayType(m.DisplayType),
		ExpiresAt:       m.ExpiresAt,
		PaidAt:          m.PaidAt,
		PaymentMethod:   m.PaymentMethod,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Transaction not found", fields)
		return errs.ErrTransactionNotFound
	}

	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)

	return r.errorClassifier.ToDomainError(err, errs.ErrTransactionNotFound)
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"transaction_id": transaction.ID,
		"external_id":    transaction.ExternalID,
		"user_id":        transaction.UserID,
	})

	transactionModel := r.entityToModel(transaction)
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&transactionModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate external id", map[string]any{
				"external_id": transaction.ExternalID,
			})
			return fmt.Errorf("%w: %s", errs.ErrDuplicateExternalID, transaction.ExternalID)
		}
		return r.handleDatabaseError("creating transaction", result.Error, map[string]any{
			"external_id": transaction.ExternalID,
		})
	}

	r.logger.Info("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"external_id":    transaction.ExternalID,
		"user_id":        transaction.UserID,
		"amount":         transaction.Amount,
	})
	return nil
}

// GetByID retrieves a transaction by its internal id
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var m model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, map[string]any{"transaction_id": id})
	}
	return r.modelToEntity(&m), nil
}

// GetByIDForUpdate retrieves a transaction and holds a row lock until the surrounding transaction ends
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Transaction, error) {
	var m model.Transaction
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking transaction", err, map[string]any{"transaction_id": id})
	}
	return r.modelToEntity(&m), nil
}

// FindByExternalID resolves an external id, exact match first.
// Providers that truncate or prefix the reference are matched by containment, which must be unique.
func (r *TransactionRepository) FindByExternalID(ctx context.Context, externalID string, minContainsLen int) (*entity.Transaction, error) {
	r.logger.Debug("Resolving external id", map[string]any{
		"external_id": externalID,
	})

	if externalID == "" {
		return nil, errs.ErrTransactionNotFound
	}

	var m model.Transaction
	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).Take(&m).Error
	if err == nil {
		return r.modelToEntity(&m), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, r.handleDatabaseError("resolving external id", err, map[string]any{"external_id": externalID})
	}

	if minContainsLen <= 0 || len(externalID) < minContainsLen {
		return nil, errs.ErrTransactionNotFound
	}

	var candidates []model.Transaction
	err = r.db.WithContext(ctx).
		Where("external_id LIKE ?", "%"+escapeLike(externalID)+"%").
		Order("created_at DESC").
		Limit(2).
		Find(&candidates).Error
	if err != nil {
		return nil, r.handleDatabaseError("matching external id", err, map[string]any{"external_id": externalID})
	}

	switch len(candidates) {
	case 0:
		return nil, errs.ErrTransactionNotFound
	case 1:
		r.logger.Info("External id resolved by containment", map[string]any{
			"reference":   externalID,
			"external_id": candidates[0].ExternalID,
		})
		return r.modelToEntity(&candidates[0]), nil
	default:
		r.logger.Warn("External id matches more than one transaction", map[string]any{
			"reference": externalID,
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrAmbiguousExternalID, externalID)
	}
}

// UpdateAfterCreate applies provider data to a PENDING transaction in one conditional statement
func (r *TransactionRepository) UpdateAfterCreate(ctx context.Context, id string, patch entity.TransactionPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	updates := map[string]any{"updated_at": r.timeProvider.Now()}
	if patch.DisplayPayload != nil {
		updates["display_payload"] = *patch.DisplayPayload
	}
	if patch.DisplayType != nil {
		updates["display_type"] = string(*patch.DisplayType)
	}
	if patch.ProviderRef != nil {
		updates["provider_ref"] = *patch.ProviderRef
	}
	if patch.ExpiresAt != nil {
		updates["expires_at"] = *patch.ExpiresAt
	}

	query := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending))
	if patch.Amount != nil {
		// Only one correction: an uncorrected row, or a resend of the already-corrected amount.
		query = query.Where("amount_corrected = ? OR amount = ?", false, *patch.Amount)
		updates["amount"] = *patch.Amount
		updates["amount_corrected"] = gorm.Expr("amount_corrected OR amount <> ?", *patch.Amount)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return r.handleDatabaseError("updating transaction after create", result.Error, map[string]any{"transaction_id": id})
	}
	if result.RowsAffected > 0 {
		return nil
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != entity.StatusPending {
		return fmt.Errorf("%w: transaction %s is %s", errs.ErrInvalidStatusTransition, id, current.Status)
	}
	return errs.ErrAmountAlreadyCorrected
}

// MarkPaid sets PAID only when the stored status is one of from
func (r *TransactionRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time, method string, from ...entity.TransactionStatus) (bool, error) {
	if len(from) == 0 {
		from = []entity.TransactionStatus{entity.StatusPending}
	}
	statuses := make([]string, 0, len(from))
	for _, s := range from {
		statuses = append(statuses, string(s))
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status IN ?", id, statuses).
		Updates(map[string]any{
			"status":         string(entity.StatusPaid),
			"paid_at":        paidAt,
			"payment_method": method,
			"updated_at":     r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("marking transaction paid", result.Error, map[string]any{"transaction_id": id})
	}

	if result.RowsAffected == 0 {
		return false, r.requireExists(ctx, id)
	}

	r.logger.Debug("Transaction marked paid", map[string]any{
		"transaction_id": id,
		"method":         method,
	})
	return true, nil
}

// TransitionFromPending moves a PENDING transaction to EXPIRED or FAILED
func (r *TransactionRepository) TransitionFromPending(ctx context.Context, id string, to entity.TransactionStatus) (bool, error) {
	if to != entity.StatusExpired && to != entity.StatusFailed {
		return false, fmt.Errorf("%w: PENDING -> %s", errs.ErrInvalidStatusTransition, to)
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("transitioning transaction", result.Error, map[string]any{"transaction_id": id})
	}
	if result.RowsAffected == 0 {
		return false, r.requireExists(ctx, id)
	}
	return true, nil
}

// ListByUser returns the most recent transactions of a user
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.Transaction
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, map[string]any{"user_id": userID})
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.modelToEntity(&rows[i]))
	}
	return transactions, nil
}

// requireExists distinguishes "precondition failed" from "no such row" after a zero-row update
func (r *TransactionRepository) requireExists(ctx context.Context, id string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return r.handleDatabaseError("checking transaction", err, map[string]any{"transaction_id": id})
	}
	if count == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}
