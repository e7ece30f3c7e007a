package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

// WebhookEventRepository stores every inbound provider delivery
type WebhookEventRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWebhookEventRepository creates a new WebhookEventRepository instance
func NewWebhookEventRepository(db *gorm.DB, logger coreport.Logger) *WebhookEventRepository {
	return &WebhookEventRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Record stores a delivery. Bodies that are valid JSON go to the jsonb column,
// everything else is kept verbatim in raw_payload.
func (r *WebhookEventRepository) Record(ctx context.Context, event *entity.WebhookEvent) error {
	row := model.WebhookEvent{
		ID:              event.ID,
		Provider:        event.Provider,
		ExternalID:      event.ExternalID,
		ReportedStatus:  event.ReportedStatus,
		SignatureValid:  event.SignatureValid,
		Result:          string(event.Result),
		ProcessingError: event.ProcessingError,
		ReceivedAt:      event.ReceivedAt,
		ProcessedAt:     event.ProcessedAt,
	}
	if json.Valid(event.Payload) {
		row.Payload = datatypes.JSON(event.Payload)
	} else {
		row.RawPayload = string(event.Payload)
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("Failed to record webhook event", map[string]any{
			"webhook_id": event.ID,
			"provider":   event.Provider,
			"error":      err.Error(),
		})
		return r.errorClassifier.ToDomainError(err, errs.ErrInternalServer)
	}
	return nil
}

// MarkProcessed records the outcome of a delivery
func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, id string, result entity.WebhookResult, processingError string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.WebhookEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"result":           string(result),
			"processing_error": processingError,
			"processed_at":     at,
		})
	if res.Error != nil {
		r.logger.Error("Failed to mark webhook event processed", map[string]any{
			"webhook_id": id,
			"error":      res.Error.Error(),
		})
		return r.errorClassifier.ToDomainError(res.Error, errs.ErrInternalServer)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("webhook event %s not found", id)
	}
	return nil
}

// ListByExternalID returns the deliveries for a transaction, oldest first
func (r *WebhookEventRepository) ListByExternalID(ctx context.Context, externalID string) ([]*entity.WebhookEvent, error) {
	var rows []model.WebhookEvent
	err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		Order("received_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrInternalServer)
	}

	events := make([]*entity.WebhookEvent, 0, len(rows))
	for _, row := range rows {
		payload := []byte(row.Payload)
		if len(payload) == 0 {
			payload = []byte(row.RawPayload)
		}
		events = append(events, &entity.WebhookEvent{
			ID:              row.ID,
			Provider:        row.Provider,
			ExternalID:      row.ExternalID,
			ReportedStatus:  row.ReportedStatus,
			Payload:         payload,
			SignatureValid:  row.SignatureValid,
			Result:          entity.WebhookResult(row.Result),
			ProcessingError: row.ProcessingError,
			ReceivedAt:      row.ReceivedAt,
			ProcessedAt:     row.ProcessedAt,
		})
	}
	return events, nil
}
