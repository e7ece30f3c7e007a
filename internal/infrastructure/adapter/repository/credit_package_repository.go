package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

// CreditPackageRepository reads and seeds the package catalog using GORM
type CreditPackageRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCreditPackageRepository creates a new CreditPackageRepository instance
func NewCreditPackageRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CreditPackageRepository {
	return &CreditPackageRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func packageToEntity(m *model.CreditPackage) *entity.CreditPackage {
	return &entity.CreditPackage{
		ID:        m.ID,
		Name:      m.Name,
		Credits:   m.Credits,
		Price:     m.Price,
		Active:    m.Active,
		SortOrder: m.SortOrder,
	}
}

// GetByID returns a catalog entry, active or not
func (r *CreditPackageRepository) GetByID(ctx context.Context, id string) (*entity.CreditPackage, error) {
	var m model.CreditPackage
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		mapped := r.errorClassifier.ToDomainError(err, errs.ErrPackageNotFound)
		if mapped != errs.ErrPackageNotFound {
			r.logger.Error("Failed to load credit package", map[string]any{
				"package_id": id,
				"error":      err.Error(),
			})
		}
		return nil, mapped
	}
	return packageToEntity(&m), nil
}

// ListActive returns packages on sale, in display order
func (r *CreditPackageRepository) ListActive(ctx context.Context) ([]*entity.CreditPackage, error) {
	var rows []model.CreditPackage
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Failed to list credit packages", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrInternalServer)
	}

	packages := make([]*entity.CreditPackage, 0, len(rows))
	for i := range rows {
		packages = append(packages, packageToEntity(&rows[i]))
	}
	return packages, nil
}

// Upsert inserts a catalog entry or overwrites the existing one with the same id
func (r *CreditPackageRepository) Upsert(ctx context.Context, pkg *entity.CreditPackage) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	row := model.CreditPackage{
		ID:        pkg.ID,
		Name:      pkg.Name,
		Credits:   pkg.Credits,
		Price:     pkg.Price,
		Active:    pkg.Active,
		SortOrder: pkg.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "credits", "price", "active", "sort_order", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		r.logger.Error("Failed to upsert credit package", map[string]any{
			"package_id": pkg.ID,
			"error":      err.Error(),
		})
		return r.errorClassifier.ToDomainError(err, errs.ErrInternalServer)
	}

	r.logger.Debug("Credit package upserted", map[string]any{
		"package_id": pkg.ID,
		"credits":    pkg.Credits,
		"price":      pkg.Price,
	})
	return nil
}
