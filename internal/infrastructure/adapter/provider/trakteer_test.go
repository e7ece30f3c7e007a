package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/payment"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

const testQRIS = "00020101021226670016COM.NOBUBANK.WWW01189360050300000898240214000000000000000303UMI51440014ID.CO.QRIS.WWW0215ID20232921353400303UMI5204481653033605406120005802ID5911TRAKTEER ID6013JAKARTA PUSAT6304B1C2"

type trakteerFake struct {
	server     *httptest.Server
	pageHits   atomic.Int32
	staleFirst bool
	posts      atomic.Int32
	lastTip    trakteerTip
}

func newTrakteerFake(t *testing.T) *trakteerFake {
	t.Helper()
	fake := &trakteerFake{}
	mux := http.NewServeMux()

	mux.HandleFunc("/bengkel-ku", func(w http.ResponseWriter, r *http.Request) {
		n := fake.pageHits.Add(1)
		http.SetCookie(w, &http.Cookie{Name: "trakteer_session", Value: "s1"})
		token := "csrf-1"
		if n > 1 {
			token = "csrf-2"
		}
		_, _ = io.WriteString(w, `<html><head><meta name="csrf-token" content="`+token+`"></head></html>`)
	})

	mux.HandleFunc("/pay/xendit/qris", func(w http.ResponseWriter, r *http.Request) {
		n := fake.posts.Add(1)
		if _, err := r.Cookie("trakteer_session"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if fake.staleFirst && n == 1 {
			w.WriteHeader(statusSessionExpired)
			return
		}
		if r.Header.Get("X-CSRF-TOKEN") == "" || r.Header.Get("X-Requested-With") != "XMLHttpRequest" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&fake.lastTip)
		_, _ = io.WriteString(w, `{"redirect_url":"`+fake.server.URL+`/checkout/chk-77"}`)
	})

	mux.HandleFunc("/checkout/chk-77", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<div class="qris" data-qris="`+testQRIS+`"></div>`)
	})

	mux.HandleFunc("/payment-status/chk-77", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"paid","amount":6000,"paid_at":"2024-01-01T12:03:00Z"}`)
	})

	fake.server = httptest.NewServer(mux)
	t.Cleanup(fake.server.Close)
	return fake
}

func (f *trakteerFake) provider(t *testing.T) *Trakteer {
	t.Helper()
	p, err := NewTrakteer(config.TrakteerConfig{
		Enabled:      true,
		BaseURL:      f.server.URL,
		CreatorSlug:  "bengkel-ku",
		CreatorID:    "creator-1",
		UnitID:       "unit-1",
		UnitPrice:    1000,
		WebhookToken: "trk-token",
	}, 5*time.Second, logger.NewNoopLogger())
	require.NoError(t, err)
	return p
}

func TestTrakteer_CreatePayment(t *testing.T) {
	t.Run("should buy whole units and scrape the QRIS string", func(t *testing.T) {
		// Arrange
		fake := newTrakteerFake(t)
		p := fake.provider(t)

		// Act
		result, err := p.CreatePayment(context.Background(), payment.CreatePaymentRequest{ExternalID: "TOPUP-20240101-ABCDEF", Amount: 5500})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(6), fake.lastTip.Quantity)
		assert.Equal(t, "TOPUP-20240101-ABCDEF", fake.lastTip.SupportMessage)
		assert.Equal(t, "qris", fake.lastTip.PaymentMethod)
		assert.Equal(t, "creator-1", fake.lastTip.CreatorID)
		assert.Equal(t, int64(6000), result.ExpectedAmount)
		assert.Equal(t, entity.DisplayQRString, result.DisplayType)
		assert.Equal(t, testQRIS, result.DisplayPayload)
		assert.Equal(t, "chk-77", result.ProviderRef)
	})

	t.Run("should reuse the session token across payments", func(t *testing.T) {
		fake := newTrakteerFake(t)
		p := fake.provider(t)

		_, err := p.CreatePayment(context.Background(), payment.CreatePaymentRequest{ExternalID: "TOPUP-A", Amount: 5000})
		require.NoError(t, err)
		_, err = p.CreatePayment(context.Background(), payment.CreatePaymentRequest{ExternalID: "TOPUP-B", Amount: 5000})
		require.NoError(t, err)

		assert.Equal(t, int32(1), fake.pageHits.Load())
	})

	t.Run("should refresh an expired session once", func(t *testing.T) {
		fake := newTrakteerFake(t)
		fake.staleFirst = true
		p := fake.provider(t)

		_, err := p.CreatePayment(context.Background(), payment.CreatePaymentRequest{ExternalID: "TOPUP-A", Amount: 5000})

		require.NoError(t, err)
		assert.Equal(t, int32(2), fake.pageHits.Load())
		assert.Equal(t, int32(2), fake.posts.Load())
	})
}

func TestTrakteer_CheckStatus(t *testing.T) {
	t.Run("should read the checkout status", func(t *testing.T) {
		fake := newTrakteerFake(t)
		p := fake.provider(t)

		result, err := p.CheckStatus(context.Background(), payment.StatusQuery{ProviderRef: "chk-77", ExternalID: "TOPUP-A"})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPaid, result.Status)
		assert.Equal(t, int64(6000), result.Amount)
	})

	t.Run("should fail without a checkout reference", func(t *testing.T) {
		fake := newTrakteerFake(t)
		p := fake.provider(t)

		_, err := p.CheckStatus(context.Background(), payment.StatusQuery{ExternalID: "TOPUP-A"})

		assert.ErrorIs(t, err, errs.ErrProvider)
	})
}

func TestTrakteer_ParseWebhook(t *testing.T) {
	p, err := NewTrakteer(config.TrakteerConfig{WebhookToken: "trk-token"}, time.Second, logger.NewNoopLogger())
	require.NoError(t, err)
	headers := http.Header{"X-Webhook-Token": {"trk-token"}}

	t.Run("should correlate by the echoed support message", func(t *testing.T) {
		body := `{"transaction_id":"trx-1","supporter_name":"Budi","supporter_message":"TOPUP-20240101-ABCDEF","quantity":6,"price":6000,"created_at":"2024-01-01T12:03:00Z"}`

		event, err := p.ParseWebhook(headers, []byte(body))

		require.NoError(t, err)
		assert.Equal(t, "TOPUP-20240101-ABCDEF", event.ExternalID)
		assert.Equal(t, entity.StatusPaid, event.Status)
		assert.Equal(t, int64(6000), event.Amount)
		assert.Equal(t, "trx-1", event.ProviderRef)
		assert.Equal(t, "QRIS", event.Method)
	})

	t.Run("should fall back to the transaction id", func(t *testing.T) {
		event, err := p.ParseWebhook(headers, []byte(`{"transaction_id":"trx-1","price":6000}`))

		require.NoError(t, err)
		assert.Equal(t, "trx-1", event.ExternalID)
	})

	t.Run("should ignore test deliveries", func(t *testing.T) {
		_, err := p.ParseWebhook(headers, []byte(`{"supporter_name":"Test"}`))
		assert.ErrorIs(t, err, errs.ErrWebhookIgnored)
	})

	t.Run("should reject a wrong token", func(t *testing.T) {
		_, err := p.ParseWebhook(http.Header{}, []byte(`{"transaction_id":"trx-1"}`))
		assert.ErrorIs(t, err, errs.ErrWebhookUnauthorized)
	})
}

func TestLastPathSegment(t *testing.T) {
	assert.Equal(t, "chk-77", lastPathSegment("https://trakteer.id/checkout/chk-77/"))
	assert.Equal(t, "chk-77", lastPathSegment("/checkout/chk-77?x=1"))
}
