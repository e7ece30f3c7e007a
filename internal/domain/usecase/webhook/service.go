package webhook

import (
	"context"
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/payment"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// Service stores every inbound delivery in the inbox, authenticates it through the
// provider adapter and hands the normalized event to the reconciliation engine.
type Service struct {
	providers    payment.Registry
	inbox        persistence.WebhookEventRepository
	reconciler   usecase.ReconciliationUseCase
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.WebhookUseCase = (*Service)(nil)

// NewService creates a new webhook service
func NewService(
	providers payment.Registry,
	inbox persistence.WebhookEventRepository,
	reconciler usecase.ReconciliationUseCase,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		providers:    providers,
		inbox:        inbox,
		reconciler:   reconciler,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// HandleWebhook processes one delivery. Ignored deliveries and late payments are
// acknowledged without error so the provider stops redelivering them.
func (s *Service) HandleWebhook(
	ctx context.Context,
	providerName string,
	headers http.Header,
	body []byte,
) (*usecase.WebhookResult, error) {
	provider, err := s.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	record := &entity.WebhookEvent{
		ID:         s.ids.NewID(),
		Provider:   provider.Name(),
		Payload:    body,
		Result:     entity.WebhookReceived,
		ReceivedAt: s.timeProvider.Now(),
	}

	event, parseErr := provider.ParseWebhook(headers, body)
	// Every adapter checks the secret before decoding, so anything but an auth failure was authentic.
	record.SignatureValid = !errors.Is(parseErr, errs.ErrWebhookUnauthorized)
	if event != nil {
		record.ExternalID = event.ExternalID
		record.ReportedStatus = string(event.Status)
	}
	s.record(ctx, record)

	if parseErr != nil {
		result := classifyParseError(parseErr)
		s.finish(ctx, record, result, parseErr)
		if result == entity.WebhookIgnored {
			return &usecase.WebhookResult{Result: result}, nil
		}
		s.logger.Warn("Webhook rejected", map[string]any{
			"provider": provider.Name(),
			"result":   result,
			"error":    parseErr.Error(),
		})
		return nil, parseErr
	}

	event.Provider = provider.Name()
	event.Source = entity.SourceWebhook

	reconciled, err := s.reconciler.Apply(ctx, *event)
	if err != nil {
		result := entity.WebhookError
		if errors.Is(err, errs.ErrTransactionNotFound) {
			result = entity.WebhookNotFound
		}
		s.finish(ctx, record, result, err)
		return nil, err
	}

	result := toWebhookResult(reconciled.Outcome)
	s.finish(ctx, record, result, nil)

	return &usecase.WebhookResult{
		Result:     result,
		ExternalID: reconciled.Transaction.ExternalID,
		Status:     reconciled.Transaction.Status,
	}, nil
}

// record writes the inbox row. The inbox is an audit trail, so a failed write is logged
// and processing continues.
func (s *Service) record(ctx context.Context, record *entity.WebhookEvent) {
	if err := s.inbox.Record(ctx, record); err != nil {
		s.logger.Error("Failed to record webhook", map[string]any{
			"provider":    record.Provider,
			"external_id": record.ExternalID,
			"error":       err.Error(),
		})
		record.ID = ""
	}
}

func (s *Service) finish(ctx context.Context, record *entity.WebhookEvent, result entity.WebhookResult, cause error) {
	if record.ID == "" {
		return
	}
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	if err := s.inbox.MarkProcessed(ctx, record.ID, result, msg, s.timeProvider.Now()); err != nil {
		s.logger.Error("Failed to update webhook record", map[string]any{
			"webhook_event_id": record.ID,
			"error":            err.Error(),
		})
	}
}

func classifyParseError(err error) entity.WebhookResult {
	switch {
	case errors.Is(err, errs.ErrWebhookIgnored):
		return entity.WebhookIgnored
	case errors.Is(err, errs.ErrWebhookUnauthorized):
		return entity.WebhookUnauthorized
	case errors.Is(err, errs.ErrInvalidWebhookPayload):
		return entity.WebhookInvalid
	default:
		return entity.WebhookError
	}
}

func toWebhookResult(outcome usecase.Outcome) entity.WebhookResult {
	switch outcome {
	case usecase.OutcomeSettled:
		return entity.WebhookSettled
	case usecase.OutcomeAlreadyProcessed:
		return entity.WebhookDuplicate
	case usecase.OutcomeExpired:
		return entity.WebhookExpired
	case usecase.OutcomeFailed:
		return entity.WebhookFailed
	case usecase.OutcomeLateRejected:
		return entity.WebhookRejectedLate
	default:
		return entity.WebhookNoop
	}
}
