package payment

import (
	"context"
	"net/http"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// CreatePaymentRequest is the generic "create payment" call made by the top-up flow
type CreatePaymentRequest struct {
	ExternalID  string
	Amount      int64
	Description string
	PayerEmail  string
	Metadata    map[string]string
}

// CreatePaymentResult is the normalized provider response
type CreatePaymentResult struct {
	ProviderRef    string
	DisplayPayload string
	DisplayType    entity.DisplayType
	// ExpectedAmount is the amount the payer must send; it differs from the
	// requested amount when the provider applies a uniqueness correction.
	ExpectedAmount int64
	ExpiresAt      *time.Time
}

// StatusQuery identifies a payment for CheckStatus. Providers use whichever field they key on.
type StatusQuery struct {
	ProviderRef string
	ExternalID  string
	Amount      int64
}

// StatusResult is the normalized status of a provider-side payment
type StatusResult struct {
	Status entity.TransactionStatus
	PaidAt *time.Time
	Method string
	Amount int64
}

// Provider translates generic payment calls into one third-party API.
// Every error returned from CreatePayment and CheckStatus wraps ErrProvider.
type Provider interface {
	Name() string
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResult, error)
	CheckStatus(ctx context.Context, query StatusQuery) (*StatusResult, error)
	// ParseWebhook authenticates and normalizes an inbound delivery.
	// Returns ErrWebhookUnauthorized, ErrInvalidWebhookPayload or ErrWebhookIgnored.
	ParseWebhook(headers http.Header, body []byte) (*entity.PaymentEvent, error)
}

// Registry resolves provider adapters by name
type Registry interface {
	Get(name string) (Provider, error)
	Default() Provider
	Names() []string
}
