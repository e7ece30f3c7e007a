package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/payment"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

// TrakteerName is the registry key of the tip-page QRIS adapter
const TrakteerName = "trakteer"

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// statusSessionExpired is what Laravel answers when the CSRF session is stale
const statusSessionExpired = 419

var (
	csrfMetaPattern = regexp.MustCompile(`<meta\s+name=["']csrf-token["']\s+content=["']([^"']+)["']`)
	qrisPattern     = regexp.MustCompile(`000201[A-Za-z0-9.\-_ ]+`)
)

// Trakteer pays through a creator's public tip page. It has no merchant API: the adapter
// keeps a browser-like session (cookies plus CSRF token) and buys whole tip units, so the
// payable amount is the requested amount rounded up to the unit price.
type Trakteer struct {
	client       *http.Client
	baseURL      string
	creatorSlug  string
	creatorID    string
	unitID       string
	unitPrice    int64
	webhookToken string
	logger       coreport.Logger

	mu   sync.Mutex
	csrf string
}

var _ payment.Provider = (*Trakteer)(nil)

// NewTrakteer creates the adapter with its own cookie jar
func NewTrakteer(cfg config.TrakteerConfig, timeout time.Duration, logger coreport.Logger) (*Trakteer, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client := NewHTTPClient(timeout)
	client.Jar = jar

	return &Trakteer{
		client:       client,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		creatorSlug:  cfg.CreatorSlug,
		creatorID:    cfg.CreatorID,
		unitID:       cfg.UnitID,
		unitPrice:    cfg.UnitPrice,
		webhookToken: cfg.WebhookToken,
		logger:       logger,
	}, nil
}

// Name returns the registry key
func (p *Trakteer) Name() string { return TrakteerName }

type trakteerTip struct {
	Form           string          `json:"form"`
	CreatorID      string          `json:"creator_id"`
	UnitID         string          `json:"unit_id"`
	Quantity       int64           `json:"quantity"`
	DisplayName    string          `json:"display_name"`
	SupportMessage string          `json:"support_message"`
	Times          string          `json:"times"`
	PaymentMethod  string          `json:"payment_method"`
	GuestEmail     string          `json:"guest_email,omitempty"`
	StreamOptions  map[string]bool `json:"stream_options"`
}

type trakteerTipResponse struct {
	RedirectURL string `json:"redirect_url"`
	CheckoutURL string `json:"checkout_url"`
}

type trakteerStatusResponse struct {
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt *time.Time      `json:"paid_at"`
}

type trakteerWebhook struct {
	TransactionID    string          `json:"transaction_id"`
	SupporterName    string          `json:"supporter_name"`
	SupporterMessage string          `json:"supporter_message"`
	Unit             string          `json:"unit"`
	Quantity         int64           `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	CreatedAt        *time.Time      `json:"created_at"`
}

// CreatePayment opens a QRIS tip and scrapes the QR string from the checkout page.
// The reference travels as the support message, which the webhook echoes back.
func (p *Trakteer) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (*payment.CreatePaymentResult, error) {
	csrf, err := p.csrfToken(ctx, false)
	if err != nil {
		return nil, err
	}

	rounded, units := entity.RoundUpToUnit(req.Amount, p.unitPrice)
	tip := trakteerTip{
		Form:           "create-tip",
		CreatorID:      p.creatorID,
		UnitID:         p.unitID,
		Quantity:       units,
		DisplayName:    "Top-up",
		SupportMessage: req.ExternalID,
		Times:          "once",
		PaymentMethod:  "qris",
		GuestEmail:     req.PayerEmail,
		StreamOptions:  map[string]bool{"on_livetip": false},
	}

	var resp trakteerTipResponse
	status, err := p.postTip(ctx, csrf, tip, &resp)
	if status == statusSessionExpired {
		if csrf, err = p.csrfToken(ctx, true); err != nil {
			return nil, err
		}
		_, err = p.postTip(ctx, csrf, tip, &resp)
	}
	if err != nil {
		return nil, err
	}

	checkoutURL := resp.RedirectURL
	if checkoutURL == "" {
		checkoutURL = resp.CheckoutURL
	}
	if checkoutURL == "" {
		return nil, errs.NewProviderError(TrakteerName, "create_payment", 0, "", fmt.Errorf("no checkout url returned"))
	}

	page, _, err := p.get(ctx, "create_payment", checkoutURL, "text/html")
	if err != nil {
		return nil, err
	}
	qris := qrisPattern.FindString(page)
	if qris == "" {
		return nil, errs.NewProviderError(TrakteerName, "create_payment", 0, "", fmt.Errorf("no QRIS string on checkout page"))
	}
	if decoded, err := url.PathUnescape(qris); err == nil {
		qris = decoded
	}

	if rounded != req.Amount {
		p.logger.Info("Amount rounded up to whole tip units", map[string]any{
			"external_id": req.ExternalID,
			"requested":   req.Amount,
			"payable":     rounded,
			"units":       units,
		})
	}

	return &payment.CreatePaymentResult{
		ProviderRef:    lastPathSegment(checkoutURL),
		DisplayPayload: strings.TrimSpace(qris),
		DisplayType:    entity.DisplayQRString,
		ExpectedAmount: rounded,
	}, nil
}

// CheckStatus polls the checkout's status endpoint with the session cookies
func (p *Trakteer) CheckStatus(ctx context.Context, query payment.StatusQuery) (*payment.StatusResult, error) {
	if query.ProviderRef == "" {
		return nil, errs.NewProviderError(TrakteerName, "check_status", 0, "", fmt.Errorf("transaction has no checkout reference"))
	}

	raw, _, err := p.get(ctx, "check_status", p.baseURL+"/payment-status/"+url.PathEscape(query.ProviderRef), "application/json")
	if err != nil {
		return nil, err
	}

	var resp trakteerStatusResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, errs.NewProviderError(TrakteerName, "check_status", 0, raw, fmt.Errorf("malformed response: %w", err))
	}
	status, err := entity.ParseTransactionStatus(resp.Status)
	if err != nil {
		return nil, errs.NewProviderError(TrakteerName, "check_status", 0, raw, err)
	}
	amount, err := entity.AmountFromDecimal(resp.Amount)
	if err != nil {
		return nil, errs.NewProviderError(TrakteerName, "check_status", 0, raw, err)
	}

	return &payment.StatusResult{
		Status: status,
		PaidAt: resp.PaidAt,
		Method: "QRIS",
		Amount: amount,
	}, nil
}

// ParseWebhook authenticates x-webhook-token. Every authentic delivery is a paid tip;
// deliveries without a transaction id are dashboard test pings.
func (p *Trakteer) ParseWebhook(headers http.Header, body []byte) (*entity.PaymentEvent, error) {
	if !tokenMatches(p.webhookToken, headers.Get("X-Webhook-Token")) {
		return nil, errs.ErrWebhookUnauthorized
	}

	var hook trakteerWebhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidWebhookPayload, err.Error())
	}
	if hook.TransactionID == "" {
		return nil, fmt.Errorf("%w: test delivery", errs.ErrWebhookIgnored)
	}

	// The message may come back trimmed; a partial reference is resolved by containment.
	reference := strings.TrimSpace(hook.SupporterMessage)
	if reference == "" {
		reference = hook.TransactionID
	}

	amount, err := entity.AmountFromDecimal(hook.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidWebhookPayload, err.Error())
	}

	return &entity.PaymentEvent{
		ExternalID:  reference,
		Status:      entity.StatusPaid,
		PaidAt:      hook.CreatedAt,
		Method:      "QRIS",
		Amount:      amount,
		ProviderRef: hook.TransactionID,
	}, nil
}

// csrfToken returns the cached token, scraping the creator page when missing or when refresh is set
func (p *Trakteer) csrfToken(ctx context.Context, refresh bool) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.csrf != "" && !refresh {
		return p.csrf, nil
	}

	page, _, err := p.get(ctx, "create_payment", p.baseURL+"/"+url.PathEscape(p.creatorSlug), "text/html")
	if err != nil {
		return "", err
	}
	match := csrfMetaPattern.FindStringSubmatch(page)
	if match == nil {
		return "", errs.NewProviderError(TrakteerName, "create_payment", 0, "", fmt.Errorf("csrf-token meta tag not found"))
	}

	p.csrf = match[1]
	return p.csrf, nil
}

func (p *Trakteer) postTip(ctx context.Context, csrf string, tip trakteerTip, out *trakteerTipResponse) (int, error) {
	payload, err := json.Marshal(tip)
	if err != nil {
		return 0, errs.NewProviderError(TrakteerName, "create_payment", 0, "", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/pay/xendit/qris", strings.NewReader(string(payload)))
	if err != nil {
		return 0, errs.NewProviderError(TrakteerName, "create_payment", 0, "", err)
	}
	p.browserHeaders(req, "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRF-TOKEN", csrf)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Referer", p.baseURL+"/"+p.creatorSlug)
	req.Header.Set("Origin", p.baseURL)

	raw, status, err := p.do(req, "create_payment")
	if err != nil {
		return status, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return status, errs.NewProviderError(TrakteerName, "create_payment", status, raw, fmt.Errorf("malformed response: %w", err))
	}
	return status, nil
}

func (p *Trakteer) get(ctx context.Context, operation, target, accept string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", 0, errs.NewProviderError(TrakteerName, operation, 0, "", err)
	}
	p.browserHeaders(req, accept)
	if accept == "application/json" {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	return p.do(req, operation)
}

func (p *Trakteer) do(req *http.Request, operation string) (string, int, error) {
	resp, err := p.client.Do(req)
	if err != nil {
		return "", 0, errs.NewProviderError(TrakteerName, operation, 0, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", resp.StatusCode, errs.NewProviderError(TrakteerName, operation, resp.StatusCode, "", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", resp.StatusCode, errs.NewProviderError(TrakteerName, operation, resp.StatusCode, string(raw), fmt.Errorf("unexpected status %s", resp.Status))
	}
	return string(raw), resp.StatusCode, nil
}

func (p *Trakteer) browserHeaders(req *http.Request, accept string) {
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", accept)
}

func lastPathSegment(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	path := strings.TrimRight(u.Path, "/")
	return path[strings.LastIndex(path, "/")+1:]
}
