package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/payment"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

// CashiName is the registry key of the QRIS order aggregator
const CashiName = "cashi"

const (
	cashiSettledEvent  = "PAYMENT_SETTLED"
	cashiSettledStatus = "SETTLED"
	cashiTestPrefix    = "TEST-"
)

// Cashi creates QRIS orders whose amount carries a few unique digits.
// The payer must send the returned amount, not the package price.
type Cashi struct {
	api          *apiClient
	webhookToken string
}

var _ payment.Provider = (*Cashi)(nil)

// NewCashi creates the adapter
func NewCashi(cfg config.CashiConfig, client *http.Client, logger coreport.Logger) *Cashi {
	apiKey := cfg.APIKey
	return &Cashi{
		api: newAPIClient(CashiName, cfg.BaseURL, client, logger, func(req *http.Request) {
			req.Header.Set("X-API-KEY", apiKey)
		}),
		webhookToken: cfg.WebhookToken,
	}
}

// Name returns the registry key
func (p *Cashi) Name() string { return CashiName }

type cashiOrder struct {
	Success     bool            `json:"success"`
	OrderID     string          `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	CheckoutURL string          `json:"checkout_url"`
	QRURL       string          `json:"qrUrl"`
	ExpiresAt   *time.Time      `json:"expires_at"`
}

type cashiStatus struct {
	Success      bool            `json:"success"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	OrderID      string          `json:"order_id"`
	ProviderTxID string          `json:"provider_tx_id"`
	PaidAt       *time.Time      `json:"paid_at"`
}

type cashiWebhook struct {
	Event string `json:"event"`
	Data  struct {
		OrderID      string          `json:"order_id"`
		Status       string          `json:"status"`
		Amount       decimal.Decimal `json:"amount"`
		ProviderTxID string          `json:"provider_tx_id"`
		SettledAt    *time.Time      `json:"settled_at"`
	} `json:"data"`
}

func mapCashiStatus(status string) (entity.TransactionStatus, bool) {
	switch strings.ToUpper(status) {
	case "PENDING", "UNPAID":
		return entity.StatusPending, true
	case "SETTLED", "PAID":
		return entity.StatusPaid, true
	case "EXPIRED":
		return entity.StatusExpired, true
	case "FAILED", "CANCELLED":
		return entity.StatusFailed, true
	default:
		return "", false
	}
}

// CreatePayment creates an order keyed by the external id
func (p *Cashi) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (*payment.CreatePaymentResult, error) {
	body := map[string]any{
		"amount":   req.Amount,
		"order_id": req.ExternalID,
	}

	var order cashiOrder
	if err := p.api.doJSON(ctx, "create_payment", http.MethodPost, "/create-order", body, &order); err != nil {
		return nil, err
	}
	if !order.Success {
		return nil, errs.NewProviderError(CashiName, "create_payment", 0, "", fmt.Errorf("order was not accepted"))
	}

	amount, err := entity.AmountFromDecimal(order.Amount)
	if err != nil || amount == 0 {
		return nil, errs.NewProviderError(CashiName, "create_payment", 0, "", fmt.Errorf("invalid order amount %s", order.Amount))
	}

	result := &payment.CreatePaymentResult{
		ProviderRef:    order.OrderID,
		ExpectedAmount: amount,
		ExpiresAt:      order.ExpiresAt,
	}
	switch {
	case order.QRURL != "":
		result.DisplayPayload, result.DisplayType = order.QRURL, entity.DisplayQRImage
	case order.CheckoutURL != "":
		result.DisplayPayload, result.DisplayType = order.CheckoutURL, entity.DisplayRedirectURL
	default:
		return nil, errs.NewProviderError(CashiName, "create_payment", 0, "", fmt.Errorf("response has neither qrUrl nor checkout_url"))
	}
	if result.ProviderRef == "" {
		result.ProviderRef = req.ExternalID
	}
	return result, nil
}

// CheckStatus reads the order. Orders are keyed by our external id, so the provider ref is only a fallback.
func (p *Cashi) CheckStatus(ctx context.Context, query payment.StatusQuery) (*payment.StatusResult, error) {
	orderID := query.ExternalID
	if orderID == "" {
		orderID = query.ProviderRef
	}

	var resp cashiStatus
	if err := p.api.doJSON(ctx, "check_status", http.MethodGet, "/check-status/"+url.PathEscape(orderID), nil, &resp); err != nil {
		return nil, err
	}

	status, ok := mapCashiStatus(resp.Status)
	if !ok {
		return nil, errs.NewProviderError(CashiName, "check_status", 0, "", fmt.Errorf("unknown order status %q", resp.Status))
	}
	amount, err := entity.AmountFromDecimal(resp.Amount)
	if err != nil {
		return nil, errs.NewProviderError(CashiName, "check_status", 0, "", err)
	}

	return &payment.StatusResult{
		Status: status,
		PaidAt: resp.PaidAt,
		Method: "QRIS",
		Amount: amount,
	}, nil
}

// ParseWebhook authenticates X-Webhook-Token and normalizes a settlement.
// Dashboard test pings carry a TEST- order id and are ignored.
func (p *Cashi) ParseWebhook(headers http.Header, body []byte) (*entity.PaymentEvent, error) {
	if !tokenMatches(p.webhookToken, headers.Get("X-Webhook-Token")) {
		return nil, errs.ErrWebhookUnauthorized
	}

	var hook cashiWebhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidWebhookPayload, err.Error())
	}
	orderID := strings.TrimSpace(hook.Data.OrderID)
	if strings.HasPrefix(orderID, cashiTestPrefix) {
		return nil, fmt.Errorf("%w: test delivery", errs.ErrWebhookIgnored)
	}
	if orderID == "" {
		return nil, fmt.Errorf("%w: missing order_id", errs.ErrInvalidWebhookPayload)
	}
	if hook.Event != cashiSettledEvent || !strings.EqualFold(hook.Data.Status, cashiSettledStatus) {
		return &entity.PaymentEvent{ExternalID: orderID},
			fmt.Errorf("%w: event %q status %q", errs.ErrWebhookIgnored, hook.Event, hook.Data.Status)
	}

	amount, err := entity.AmountFromDecimal(hook.Data.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidWebhookPayload, err.Error())
	}

	return &entity.PaymentEvent{
		ExternalID:  orderID,
		Status:      entity.StatusPaid,
		PaidAt:      hook.Data.SettledAt,
		Method:      "QRIS",
		Amount:      amount,
		ProviderRef: hook.Data.ProviderTxID,
	}, nil
}
