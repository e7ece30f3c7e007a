package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

// CreditUsageRepository implements the append-only audit log using GORM
type CreditUsageRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCreditUsageRepository creates a new CreditUsageRepository instance
func NewCreditUsageRepository(db *gorm.DB, logger coreport.Logger) *CreditUsageRepository {
	return &CreditUsageRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func usageToModel(u *entity.CreditUsage) model.CreditUsage {
	return model.CreditUsage{
		ID:            u.ID,
		UserID:        u.UserID,
		Kind:          string(u.Kind),
		Credits:       u.Credits,
		Action:        u.Action,
		TransactionID: u.TransactionID,
		SessionID:     u.SessionID,
		BalanceAfter:  u.BalanceAfter,
		CreatedAt:     u.CreatedAt,
	}
}

func usageToEntity(m *model.CreditUsage) *entity.CreditUsage {
	return &entity.CreditUsage{
		ID:            m.ID,
		UserID:        m.UserID,
		Kind:          entity.UsageKind(m.Kind),
		Credits:       m.Credits,
		Action:        m.Action,
		TransactionID: m.TransactionID,
		SessionID:     m.SessionID,
		BalanceAfter:  m.BalanceAfter,
		CreatedAt:     m.CreatedAt,
	}
}

// Append writes one audit row. The partial unique index on grants turns a second
// grant for the same transaction into ErrConstraintViolation.
func (r *CreditUsageRepository) Append(ctx context.Context, usage *entity.CreditUsage) error {
	row := usageToModel(usage)
	if err := r.db.WithContext(ctx).Omit("User").Create(&row).Error; err != nil {
		fields := map[string]any{
			"user_id": usage.UserID,
			"kind":    usage.Kind,
			"error":   err.Error(),
		}
		if usage.TransactionID != nil {
			fields["transaction_id"] = *usage.TransactionID
		}

		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate credit grant refused", fields)
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
		}
		r.logger.Error("Failed to append credit usage", fields)
		return r.errorClassifier.ToDomainError(err, errs.ErrInternalServer)
	}

	r.logger.Debug("Credit usage appended", map[string]any{
		"usage_id":      usage.ID,
		"user_id":       usage.UserID,
		"kind":          usage.Kind,
		"credits":       usage.Credits,
		"balance_after": usage.BalanceAfter,
	})
	return nil
}

// ListByUser returns the newest rows of a user
func (r *CreditUsageRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.CreditUsage, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.CreditUsage
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Error("Failed to list credit usage", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrInternalServer)
	}

	usages := make([]*entity.CreditUsage, 0, len(rows))
	for i := range rows {
		usages = append(usages, usageToEntity(&rows[i]))
	}
	return usages, nil
}

// TotalsByUser sums grants and debits in one aggregate query
func (r *CreditUsageRepository) TotalsByUser(ctx context.Context, userID string) (entity.UsageTotals, error) {
	var totals struct {
		Granted int64
		Debited int64
	}

	err := r.db.WithContext(ctx).Model(&model.CreditUsage{}).
		Select(
			"COALESCE(SUM(CASE WHEN kind = ? THEN credits ELSE 0 END), 0) AS granted, "+
				"COALESCE(SUM(CASE WHEN kind = ? THEN credits ELSE 0 END), 0) AS debited",
			string(entity.UsageGrant), string(entity.UsageDebit),
		).
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		r.logger.Error("Failed to total credit usage", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return entity.UsageTotals{}, r.errorClassifier.ToDomainError(err, errs.ErrInternalServer)
	}

	return entity.UsageTotals{Granted: totals.Granted, Debited: totals.Debited}, nil
}
