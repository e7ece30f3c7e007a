package routes

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/auth"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/notifier"
	usecasemocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/usecase"
)

type fakeCheck struct {
	err error
}

func (f fakeCheck) Name() string { return "database" }

func (f fakeCheck) Check(context.Context) (map[string]any, error) { return nil, f.err }

type APITestSuite struct {
	suite.Suite
	topUps   *usecasemocks.MockTopUpUseCase
	credits  *usecasemocks.MockCreditUseCase
	webhooks *usecasemocks.MockWebhookUseCase
	hub      *notifier.Hub
	issuer   *auth.Issuer
	health   *fakeCheck
	router   *gin.Engine
	token    string
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()

	s.topUps = usecasemocks.NewMockTopUpUseCase(s.T())
	s.credits = usecasemocks.NewMockCreditUseCase(s.T())
	s.webhooks = usecasemocks.NewMockWebhookUseCase(s.T())
	s.hub = notifier.NewHub(log)
	s.issuer = auth.NewIssuer("test-secret", "credit-ledger", time.Hour)
	s.health = &fakeCheck{}

	s.router = NewRouter(log, []string{"http://localhost:3000"}, Handlers{
		TopUp:   handler.NewTopUpHandler(s.topUps, log),
		Credit:  handler.NewCreditHandler(s.credits, log),
		Webhook: handler.NewWebhookHandler(s.webhooks, log),
		Events:  handler.NewEventsHandler(s.hub, time.Minute, log),
		Health:  handler.NewHealthHandler(time.Second, s.health),
	}, s.issuer)

	token, err := s.issuer.Issue("user-1", "budi@example.com", time.Now())
	s.Require().NoError(err)
	s.token = token
}

func (s *APITestSuite) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APITestSuite) decodeError(rec *httptest.ResponseRecorder) dto.ErrorResponse {
	var out dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *APITestSuite) TestCreateTopUp() {
	s.Run("should create a top-up for the caller", func() {
		// Arrange
		expires := time.Date(2024, 1, 1, 12, 15, 0, 0, time.UTC)
		s.topUps.EXPECT().CreateTopUp(mock.Anything, "user-1", "budi@example.com", "bengkel").
			Return(&usecase.TopUpResult{
				ExternalID:     "TOPUP-1700000000000-1a2b3c4d",
				Amount:         10007,
				DisplayPayload: "data:image/png;base64,AAA",
				DisplayType:    entity.DisplayQRImage,
				ExpiresAt:      &expires,
				Provider:       "qrispolling",
			}, nil).Once()

		// Act
		rec := s.do(http.MethodPost, "/api/topup", `{"packageId":"bengkel"}`, true)

		// Assert
		s.Equal(http.StatusCreated, rec.Code)
		var out dto.TopUpResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
		s.Equal("TOPUP-1700000000000-1a2b3c4d", out.ExternalID)
		s.Equal(int64(10007), out.Amount)
		s.Equal("Rp 10.007", out.AmountFormatted)
		s.Equal(string(entity.DisplayQRImage), out.DisplayType)
		s.NotEmpty(rec.Header().Get("X-Request-ID"))
	})

	s.Run("should map an unknown package to 404", func() {
		s.topUps.EXPECT().CreateTopUp(mock.Anything, "user-1", mock.Anything, "nope").
			Return(nil, errs.ErrPackageNotFound).Once()

		rec := s.do(http.MethodPost, "/api/topup", `{"packageId":"nope"}`, true)

		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal(errs.CodePackageNotFound, s.decodeError(rec).Code)
	})

	s.Run("should map a provider failure to 502", func() {
		s.topUps.EXPECT().CreateTopUp(mock.Anything, "user-1", mock.Anything, "starter").
			Return(nil, errs.NewProviderError("xendit", "create_payment", 500, "", nil)).Once()

		rec := s.do(http.MethodPost, "/api/topup", `{"packageId":"starter"}`, true)

		s.Equal(http.StatusBadGateway, rec.Code)
	})

	s.Run("should reject a body without packageId", func() {
		rec := s.do(http.MethodPost, "/api/topup", `{}`, true)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal(errs.CodeInvalidRequest, s.decodeError(rec).Code)
	})

	s.Run("should require a bearer token", func() {
		rec := s.do(http.MethodPost, "/api/topup", `{"packageId":"starter"}`, false)

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal(errs.CodeUnauthenticated, s.decodeError(rec).Code)
	})
}

func (s *APITestSuite) TestCheckStatus() {
	s.Run("should return the reconciled status", func() {
		paidAt := time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC)
		s.topUps.EXPECT().CheckStatus(mock.Anything, "user-1", "TOPUP-1").
			Return(&usecase.StatusResult{ExternalID: "TOPUP-1", Status: entity.StatusPaid, PaidAt: &paidAt, Amount: 10007}, nil).Once()

		rec := s.do(http.MethodPost, "/api/topup/status", `{"externalId":"TOPUP-1"}`, true)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"externalId":"TOPUP-1","status":"PAID","paidAt":"2024-01-01T12:05:00Z","amount":10007}`, rec.Body.String())
	})

	s.Run("should hide other users' transactions", func() {
		s.topUps.EXPECT().CheckStatus(mock.Anything, "user-1", "TOPUP-2").
			Return(nil, errs.ErrTransactionNotFound).Once()

		rec := s.do(http.MethodPost, "/api/topup/status", `{"externalId":"TOPUP-2"}`, true)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *APITestSuite) TestListings() {
	s.Run("should list packages without authentication", func() {
		s.topUps.EXPECT().ListPackages(mock.Anything).Return([]*entity.CreditPackage{
			{ID: "starter", Name: "Starter", Credits: 5, Price: 5000, Active: true},
		}, nil).Once()

		rec := s.do(http.MethodGet, "/api/packages", "", false)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"priceFormatted":"Rp 5.000"`)
	})

	s.Run("should pass the limit to the transaction history", func() {
		s.topUps.EXPECT().ListTransactions(mock.Anything, "user-1", 5).Return([]*entity.Transaction{
			{ID: "t1", ExternalID: "TOPUP-1", Status: entity.StatusPending, Amount: 5000},
		}, nil).Once()

		rec := s.do(http.MethodGet, "/api/transactions?limit=5", "", true)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"externalId":"TOPUP-1"`)
	})

	s.Run("should reject an out-of-range limit", func() {
		rec := s.do(http.MethodGet, "/api/transactions?limit=1000", "", true)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("should list the webhook deliveries of a top-up", func() {
		// Arrange
		received := time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC)
		s.topUps.EXPECT().ListDeliveries(mock.Anything, "user-1", "TOPUP-1").Return([]*entity.WebhookEvent{
			{ID: "wh-1", Provider: "cashi", ReportedStatus: "PAID", Payload: []byte(`{"secret":"x"}`), SignatureValid: true, Result: entity.WebhookSettled, ReceivedAt: received},
			{ID: "wh-2", Provider: "cashi", Result: entity.WebhookUnauthorized, ProcessingError: "unauthorized", ReceivedAt: received.Add(time.Minute)},
		}, nil).Once()

		// Act
		rec := s.do(http.MethodGet, "/api/transactions/TOPUP-1/webhooks", "", true)

		// Assert
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"deliveries":[
			{"id":"wh-1","provider":"cashi","reportedStatus":"PAID","signatureValid":true,"result":"settled","receivedAt":"2024-01-01T12:05:00Z"},
			{"id":"wh-2","provider":"cashi","signatureValid":false,"result":"unauthorized","processingError":"unauthorized","receivedAt":"2024-01-01T12:06:00Z"}
		]}`, rec.Body.String())
	})

	s.Run("should hide deliveries of other users' top-ups", func() {
		s.topUps.EXPECT().ListDeliveries(mock.Anything, "user-1", "TOPUP-9").Return(nil, errs.ErrTransactionNotFound).Once()

		rec := s.do(http.MethodGet, "/api/transactions/TOPUP-9/webhooks", "", true)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *APITestSuite) TestCredits() {
	s.Run("should return the balance", func() {
		s.credits.EXPECT().GetBalance(mock.Anything, "user-1").Return(int64(12), nil).Once()

		rec := s.do(http.MethodGet, "/api/credits", "", true)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"credits":12}`, rec.Body.String())
	})

	s.Run("should report whether an action is affordable", func() {
		s.credits.EXPECT().CheckCredits(mock.Anything, "user-1", "diagnosis").Return(false, int64(0), nil).Once()

		rec := s.do(http.MethodGet, "/api/credits/check?action=diagnosis", "", true)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"action":"diagnosis","credits":0,"sufficient":false}`, rec.Body.String())
	})

	s.Run("should require an action to check", func() {
		rec := s.do(http.MethodGet, "/api/credits/check", "", true)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("should deduct with an optional session", func() {
		s.credits.EXPECT().Deduct(mock.Anything, "user-1", "diagnosis", mock.MatchedBy(func(id *string) bool {
			return id != nil && *id == "sess-1"
		})).Return(&usecase.DeductResult{Action: "diagnosis", Deducted: 1, Remaining: 11}, nil).Once()

		rec := s.do(http.MethodPost, "/api/credits/deduct", `{"action":"diagnosis","sessionId":"sess-1"}`, true)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"action":"diagnosis","deducted":1,"remaining":11}`, rec.Body.String())
	})

	s.Run("should answer 402 when credits are insufficient", func() {
		s.credits.EXPECT().Deduct(mock.Anything, "user-1", "chat", (*string)(nil)).
			Return(nil, errs.NewInsufficientCreditsError("user-1", 1, 0)).Once()

		rec := s.do(http.MethodPost, "/api/credits/deduct", `{"action":"chat"}`, true)

		s.Equal(http.StatusPaymentRequired, rec.Code)
		s.Equal(errs.CodeInsufficientCredits, s.decodeError(rec).Code)
	})

	s.Run("should answer 422 for an unknown action", func() {
		s.credits.EXPECT().Deduct(mock.Anything, "user-1", "teleport", (*string)(nil)).
			Return(nil, errs.ErrInvalidAction).Once()

		rec := s.do(http.MethodPost, "/api/credits/deduct", `{"action":"teleport"}`, true)

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("should render history and audit", func() {
		txID := "t1"
		s.credits.EXPECT().History(mock.Anything, "user-1", 0).Return([]*entity.CreditUsage{
			{ID: "u1", Kind: entity.UsageGrant, Credits: 12, Action: entity.ActionTopUp, TransactionID: &txID, BalanceAfter: 12},
		}, nil).Once()
		s.credits.EXPECT().Audit(mock.Anything, "user-1").
			Return(entity.NewLedgerAudit("user-1", 12, entity.UsageTotals{Granted: 12}), nil).Once()

		history := s.do(http.MethodGet, "/api/credits/history", "", true)
		audit := s.do(http.MethodGet, "/api/credits/audit", "", true)

		s.Equal(http.StatusOK, history.Code)
		s.Contains(history.Body.String(), `"kind":"grant"`)
		s.Equal(http.StatusOK, audit.Code)
		s.JSONEq(`{"balance":12,"granted":12,"debited":0,"reconstructed":12,"consistent":true}`, audit.Body.String())
	})
}

func (s *APITestSuite) TestWebhooks() {
	s.Run("should pass the raw body and headers through", func() {
		body := `{"event":"transaction.status_updated","data":{"external_id":"TOPUP-1"}}`
		s.webhooks.EXPECT().HandleWebhook(mock.Anything, "qrispolling", mock.MatchedBy(func(h http.Header) bool {
			return h.Get("X-Webhook-Token") == "hook-secret"
		}), []byte(body)).Return(&usecase.WebhookResult{
			Result:     entity.WebhookSettled,
			ExternalID: "TOPUP-1",
			Status:     entity.StatusPaid,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/qrispolling", strings.NewReader(body))
		req.Header.Set("X-Webhook-Token", "hook-secret")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"received":true,"result":"settled","externalId":"TOPUP-1","status":"PAID"}`, rec.Body.String())
	})

	s.Run("should answer 401 for a bad secret and 404 for an unknown reference", func() {
		s.webhooks.EXPECT().HandleWebhook(mock.Anything, "xendit", mock.Anything, mock.Anything).
			Return(nil, errs.ErrWebhookUnauthorized).Once()
		s.webhooks.EXPECT().HandleWebhook(mock.Anything, "trakteer", mock.Anything, mock.Anything).
			Return(nil, errs.NewReconciliationError("TOPUP-9", "resolve", errs.ErrTransactionNotFound)).Once()

		s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/webhooks/xendit", `{}`, false).Code)
		s.Equal(http.StatusNotFound, s.do(http.MethodPost, "/api/webhooks/trakteer", `{}`, false).Code)
	})
}

func (s *APITestSuite) TestHealth() {
	s.Run("should report ready", func() {
		rec := s.do(http.MethodGet, "/health", "", false)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("should report degraded when a check fails", func() {
		s.health.err = errors.New("connection refused")

		rec := s.do(http.MethodGet, "/health", "", false)

		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Contains(rec.Body.String(), "connection refused")
	})
}

func (s *APITestSuite) TestCORS() {
	s.Run("should answer preflight for allowed origins", func() {
		req := httptest.NewRequest(http.MethodOptions, "/api/topup", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal("http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	s.Run("should not echo other origins", func() {
		req := httptest.NewRequest(http.MethodOptions, "/api/topup", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Empty(rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestEventStream(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()
	hub := notifier.NewHub(log)
	issuer := auth.NewIssuer("test-secret", "", time.Hour)
	router := NewRouter(log, nil, Handlers{
		TopUp:   handler.NewTopUpHandler(usecasemocks.NewMockTopUpUseCase(t), log),
		Credit:  handler.NewCreditHandler(usecasemocks.NewMockCreditUseCase(t), log),
		Webhook: handler.NewWebhookHandler(usecasemocks.NewMockWebhookUseCase(t), log),
		Events:  handler.NewEventsHandler(hub, time.Minute, log),
		Health:  handler.NewHealthHandler(time.Second),
	}, issuer)
	server := httptest.NewServer(router)
	defer server.Close()

	token, err := issuer.Issue("user-7", "", time.Now())
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/events?access_token="+token, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)
	readUntil := func(prefix string) string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, prefix) {
				return strings.TrimSpace(line)
			}
		}
	}
	readUntil("event:ready")

	// Act
	require.NoError(t, hub.NotifyPaymentSuccess(ctx, notification.PaymentSuccess{UserID: "user-7", Credits: 40, Timestamp: time.Now()}))

	// Assert
	readUntil("event:" + notification.EventPaymentSuccess)
	data := readUntil("data:")
	require.Contains(t, data, `"credits":40`)
}
