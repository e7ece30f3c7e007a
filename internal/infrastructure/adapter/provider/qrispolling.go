package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/payment"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

// QrisPollingName is the registry key of the QRIS polling adapter
const QrisPollingName = "qrispolling"

const qrisStatusUpdated = "transaction.status_updated"

// QrisPolling talks to a QRIS polling service that watches a merchant account
// and reports incoming transfers by unique amount
type QrisPolling struct {
	api          *apiClient
	instanceID   string
	webhookToken string
}

var _ payment.Provider = (*QrisPolling)(nil)

// NewQrisPolling creates the adapter
func NewQrisPolling(cfg config.QrisPollingConfig, client *http.Client, logger coreport.Logger) *QrisPolling {
	apiKey := cfg.APIKey
	return &QrisPolling{
		api: newAPIClient(QrisPollingName, cfg.BaseURL, client, logger, func(req *http.Request) {
			req.Header.Set("X-API-Key", apiKey)
		}),
		instanceID:   cfg.InstanceID,
		webhookToken: cfg.WebhookToken,
	}
}

// Name returns the registry key
func (p *QrisPolling) Name() string { return QrisPollingName }

type qrisCreateResponse struct {
	Status string `json:"status"`
	Data   struct {
		TransactionID  string          `json:"transaction_id"`
		Amount         decimal.Decimal `json:"amount"`
		Correction     decimal.Decimal `json:"correction"`
		ExpectedAmount decimal.Decimal `json:"expected_amount"`
		QRImage        string          `json:"qr_image"`
		ExpiresAt      *time.Time      `json:"expires_at"`
	} `json:"data"`
}

type qrisStatusResponse struct {
	Status string `json:"status"`
	Data   struct {
		ID     string          `json:"id"`
		Status string          `json:"status"`
		Amount decimal.Decimal `json:"amount"`
		PaidAt *time.Time      `json:"paid_at"`
	} `json:"data"`
}

type qrisWebhook struct {
	Event string `json:"event"`
	Data  struct {
		ExternalID    string          `json:"external_id"`
		TransactionID string          `json:"transaction_id"`
		Status        string          `json:"status"`
		Amount        decimal.Decimal `json:"amount"`
		PaidAt        *time.Time      `json:"paid_at"`
		PaymentMethod string          `json:"payment_method"`
	} `json:"data"`
}

// CreatePayment registers the reference with the polling service. The service adds a small
// correction so concurrent payments of the same package have distinguishable amounts.
func (p *QrisPolling) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (*payment.CreatePaymentResult, error) {
	var resp qrisCreateResponse
	path := fmt.Sprintf("/api/polling/%s/check", url.PathEscape(p.instanceID))
	body := map[string]any{
		"external_id": req.ExternalID,
		"amount":      req.Amount,
	}
	if err := p.api.doJSON(ctx, "create_payment", http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	expected := resp.Data.ExpectedAmount
	if expected.IsZero() {
		expected = decimal.NewFromInt(req.Amount).Add(resp.Data.Correction)
	}
	amount, err := entity.AmountFromDecimal(expected)
	if err != nil {
		return nil, errs.NewProviderError(QrisPollingName, "create_payment", 0, "", err)
	}
	if resp.Data.QRImage == "" {
		return nil, errs.NewProviderError(QrisPollingName, "create_payment", 0, "", fmt.Errorf("response has no qr_image"))
	}

	return &payment.CreatePaymentResult{
		ProviderRef:    resp.Data.TransactionID,
		DisplayPayload: resp.Data.QRImage,
		DisplayType:    entity.DisplayQRImage,
		ExpectedAmount: amount,
		ExpiresAt:      resp.Data.ExpiresAt,
	}, nil
}

// CheckStatus asks the polling service about a reference
func (p *QrisPolling) CheckStatus(ctx context.Context, query payment.StatusQuery) (*payment.StatusResult, error) {
	var resp qrisStatusResponse
	path := fmt.Sprintf("/api/polling/%s/status?%s",
		url.PathEscape(p.instanceID),
		url.Values{"external_id": {query.ExternalID}}.Encode(),
	)
	if err := p.api.doJSON(ctx, "check_status", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	status, err := entity.ParseTransactionStatus(resp.Data.Status)
	if err != nil {
		return nil, errs.NewProviderError(QrisPollingName, "check_status", 0, "", err)
	}
	amount, err := entity.AmountFromDecimal(resp.Data.Amount)
	if err != nil {
		return nil, errs.NewProviderError(QrisPollingName, "check_status", 0, "", err)
	}

	return &payment.StatusResult{
		Status: status,
		PaidAt: resp.Data.PaidAt,
		Method: "QRIS",
		Amount: amount,
	}, nil
}

// ParseWebhook authenticates X-Webhook-Token and normalizes a status update
func (p *QrisPolling) ParseWebhook(headers http.Header, body []byte) (*entity.PaymentEvent, error) {
	if !tokenMatches(p.webhookToken, headers.Get("X-Webhook-Token")) {
		return nil, errs.ErrWebhookUnauthorized
	}

	var hook qrisWebhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidWebhookPayload, err.Error())
	}
	if hook.Event != qrisStatusUpdated {
		return nil, fmt.Errorf("%w: event %q", errs.ErrWebhookIgnored, hook.Event)
	}
	if hook.Data.ExternalID == "" {
		return nil, fmt.Errorf("%w: missing external_id", errs.ErrInvalidWebhookPayload)
	}

	status, err := entity.ParseTransactionStatus(hook.Data.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidWebhookPayload, err.Error())
	}
	amount, err := entity.AmountFromDecimal(hook.Data.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidWebhookPayload, err.Error())
	}

	method := hook.Data.PaymentMethod
	if method == "" {
		method = "QRIS"
	}
	return &entity.PaymentEvent{
		ExternalID:  hook.Data.ExternalID,
		Status:      status,
		PaidAt:      hook.Data.PaidAt,
		Method:      method,
		Amount:      amount,
		ProviderRef: hook.Data.TransactionID,
	}, nil
}
