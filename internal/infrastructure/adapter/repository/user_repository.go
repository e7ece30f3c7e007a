package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return entity.RestoreUser(userModel.ID, userModel.Email, userModel.Credits, userModel.CreatedAt, userModel.UpdatedAt)
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsCheckViolation(err) {
		return fmt.Errorf("%w: %s", errs.ErrInsufficientCredits, err.Error())
	}
	return r.errorClassifier.ToDomainError(err, errs.ErrUserNotFound)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}

	return r.modelToEntity(&userModel), nil
}

// EnsureExists inserts the user with a zero balance unless it is already there
func (r *UserRepository) EnsureExists(ctx context.Context, id, email string) (*entity.User, error) {
	now := r.timeProvider.Now()
	userModel := model.User{
		ID:        id,
		Email:     email,
		Credits:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("ensuring user", result.Error, id)
	}
	if result.RowsAffected > 0 {
		r.logger.Info("User created", map[string]any{
			"user_id": id,
		})
	}

	return r.GetByID(ctx, id)
}

// IncrementCredits adds delta in one statement and returns the resulting balance
func (r *UserRepository) IncrementCredits(ctx context.Context, id string, delta int64) (int64, error) {
	if delta <= 0 {
		return 0, fmt.Errorf("%w: increment must be positive", errs.ErrInvalidRequest)
	}

	var userModel model.User
	result := r.db.WithContext(ctx).Model(&userModel).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "credits"}}}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"credits":    gorm.Expr("credits + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("incrementing credits", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return 0, errs.ErrUserNotFound
	}

	r.logger.Debug("Credits incremented", map[string]any{
		"user_id":     id,
		"delta":       delta,
		"new_balance": userModel.Credits,
	})
	return userModel.Credits, nil
}

// DecrementCredits subtracts delta only while the balance covers it.
// The guard lives in the WHERE clause so concurrent debits cannot both pass a stale check.
func (r *UserRepository) DecrementCredits(ctx context.Context, id string, delta int64) (int64, error) {
	if delta <= 0 {
		return 0, fmt.Errorf("%w: decrement must be positive", errs.ErrInvalidRequest)
	}

	var userModel model.User
	result := r.db.WithContext(ctx).Model(&userModel).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "credits"}}}).
		Where("id = ? AND credits >= ?", id, delta).
		UpdateColumns(map[string]any{
			"credits":    gorm.Expr("credits - ?", delta),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("decrementing credits", result.Error, id)
	}

	if result.RowsAffected == 0 {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		r.logger.Warn("Insufficient credits", map[string]any{
			"user_id":   id,
			"required":  delta,
			"available": current.Credits(),
		})
		return current.Credits(), errs.NewInsufficientCreditsError(id, delta, current.Credits())
	}

	r.logger.Debug("Credits decremented", map[string]any{
		"user_id":     id,
		"delta":       delta,
		"new_balance": userModel.Credits,
	})
	return userModel.Credits, nil
}
