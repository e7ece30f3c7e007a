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

// XenditName is the registry key of the invoice gateway adapter
const XenditName = "xendit"

// Xendit creates hosted invoices and receives invoice callbacks
type Xendit struct {
	api                *apiClient
	callbackToken      string
	invoiceDuration    time.Duration
	successRedirectURL string
}

var _ payment.Provider = (*Xendit)(nil)

// NewXendit creates the adapter. The secret key is sent as the basic auth username.
func NewXendit(cfg config.XenditConfig, client *http.Client, logger coreport.Logger) *Xendit {
	secret := cfg.SecretKey
	return &Xendit{
		api: newAPIClient(XenditName, cfg.BaseURL, client, logger, func(req *http.Request) {
			req.SetBasicAuth(secret, "")
		}),
		callbackToken:      cfg.CallbackToken,
		invoiceDuration:    cfg.InvoiceDuration,
		successRedirectURL: cfg.SuccessRedirectURL,
	}
}

// Name returns the registry key
func (p *Xendit) Name() string { return XenditName }

type xenditInvoice struct {
	ID             string          `json:"id"`
	ExternalID     string          `json:"external_id"`
	Status         string          `json:"status"`
	Amount         decimal.Decimal `json:"amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	InvoiceURL     string          `json:"invoice_url"`
	ExpiryDate     *time.Time      `json:"expiry_date"`
	PaidAt         *time.Time      `json:"paid_at"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentChannel string          `json:"payment_channel"`
}

type xenditCreateInvoice struct {
	ExternalID         string `json:"external_id"`
	Amount             int64  `json:"amount"`
	PayerEmail         string `json:"payer_email,omitempty"`
	Description        string `json:"description,omitempty"`
	Currency           string `json:"currency"`
	InvoiceDuration    int64  `json:"invoice_duration,omitempty"`
	SuccessRedirectURL string `json:"success_redirect_url,omitempty"`
}

// mapXenditStatus maps invoice statuses. SETTLED is a PAID invoice whose funds reached the balance.
func mapXenditStatus(status string) (entity.TransactionStatus, bool) {
	switch strings.ToUpper(status) {
	case "PENDING":
		return entity.StatusPending, true
	case "PAID", "SETTLED":
		return entity.StatusPaid, true
	case "EXPIRED":
		return entity.StatusExpired, true
	default:
		return "", false
	}
}

// CreatePayment creates an invoice and returns its hosted checkout URL
func (p *Xendit) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (*payment.CreatePaymentResult, error) {
	body := xenditCreateInvoice{
		ExternalID:         req.ExternalID,
		Amount:             req.Amount,
		PayerEmail:         req.PayerEmail,
		Description:        req.Description,
		Currency:           "IDR",
		InvoiceDuration:    int64(p.invoiceDuration / time.Second),
		SuccessRedirectURL: p.successRedirectURL,
	}

	var invoice xenditInvoice
	if err := p.api.doJSON(ctx, "create_payment", http.MethodPost, "/v2/invoices", body, &invoice); err != nil {
		return nil, err
	}
	if invoice.InvoiceURL == "" || invoice.ID == "" {
		return nil, errs.NewProviderError(XenditName, "create_payment", 0, "", fmt.Errorf("invoice response is missing id or invoice_url"))
	}

	amount := req.Amount
	if !invoice.Amount.IsZero() {
		parsed, err := entity.AmountFromDecimal(invoice.Amount)
		if err != nil {
			return nil, errs.NewProviderError(XenditName, "create_payment", 0, "", err)
		}
		amount = parsed
	}

	return &payment.CreatePaymentResult{
		ProviderRef:    invoice.ID,
		DisplayPayload: invoice.InvoiceURL,
		DisplayType:    entity.DisplayRedirectURL,
		ExpectedAmount: amount,
		ExpiresAt:      invoice.ExpiryDate,
	}, nil
}

// CheckStatus reads the invoice by id, or by external id when the id was never stored
func (p *Xendit) CheckStatus(ctx context.Context, query payment.StatusQuery) (*payment.StatusResult, error) {
	var invoice xenditInvoice
	if query.ProviderRef != "" {
		if err := p.api.doJSON(ctx, "check_status", http.MethodGet, "/v2/invoices/"+url.PathEscape(query.ProviderRef), nil, &invoice); err != nil {
			return nil, err
		}
	} else {
		var invoices []xenditInvoice
		path := "/v2/invoices?" + url.Values{"external_id": {query.ExternalID}}.Encode()
		if err := p.api.doJSON(ctx, "check_status", http.MethodGet, path, nil, &invoices); err != nil {
			return nil, err
		}
		if len(invoices) == 0 {
			return nil, errs.NewProviderError(XenditName, "check_status", http.StatusNotFound, "", fmt.Errorf("no invoice for %s", query.ExternalID))
		}
		invoice = invoices[0]
	}

	status, ok := mapXenditStatus(invoice.Status)
	if !ok {
		return nil, errs.NewProviderError(XenditName, "check_status", 0, "", fmt.Errorf("unknown invoice status %q", invoice.Status))
	}
	amount, err := entity.AmountFromDecimal(paidOrBilled(invoice))
	if err != nil {
		return nil, errs.NewProviderError(XenditName, "check_status", 0, "", err)
	}

	return &payment.StatusResult{
		Status: status,
		PaidAt: invoice.PaidAt,
		Method: invoiceMethod(invoice),
		Amount: amount,
	}, nil
}

// ParseWebhook authenticates x-callback-token and normalizes an invoice callback
func (p *Xendit) ParseWebhook(headers http.Header, body []byte) (*entity.PaymentEvent, error) {
	if !tokenMatches(p.callbackToken, headers.Get("X-Callback-Token")) {
		return nil, errs.ErrWebhookUnauthorized
	}

	var invoice xenditInvoice
	if err := json.Unmarshal(body, &invoice); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidWebhookPayload, err.Error())
	}
	if invoice.ExternalID == "" {
		return nil, fmt.Errorf("%w: missing external_id", errs.ErrInvalidWebhookPayload)
	}

	status, ok := mapXenditStatus(invoice.Status)
	if !ok {
		return &entity.PaymentEvent{ExternalID: invoice.ExternalID},
			fmt.Errorf("%w: invoice status %q", errs.ErrWebhookIgnored, invoice.Status)
	}
	amount, err := entity.AmountFromDecimal(paidOrBilled(invoice))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidWebhookPayload, err.Error())
	}

	return &entity.PaymentEvent{
		ExternalID:  invoice.ExternalID,
		Status:      status,
		PaidAt:      invoice.PaidAt,
		Method:      invoiceMethod(invoice),
		Amount:      amount,
		ProviderRef: invoice.ID,
	}, nil
}

func paidOrBilled(invoice xenditInvoice) decimal.Decimal {
	if !invoice.PaidAmount.IsZero() {
		return invoice.PaidAmount
	}
	return invoice.Amount
}

func invoiceMethod(invoice xenditInvoice) string {
	switch {
	case invoice.PaymentChannel != "":
		return invoice.PaymentChannel
	case invoice.PaymentMethod != "":
		return invoice.PaymentMethod
	default:
		return "XENDIT"
	}
}
