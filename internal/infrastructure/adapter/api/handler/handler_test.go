package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/auth"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
	notificationmocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/notification"
	usecasemocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/usecase"
)

type fixedIdentity struct{}

func (fixedIdentity) Verify(string) (auth.Identity, error) {
	return auth.Identity{UserID: "user-1"}, nil
}

func authedEngine(route string, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.NewNoopLogger()))
	r.GET(route, middleware.Authenticate(fixedIdentity{}), h)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreditHandler_Audit(t *testing.T) {
	t.Run("should log a mismatch between balance and audit log", func(t *testing.T) {
		// Arrange
		credits := usecasemocks.NewMockCreditUseCase(t)
		log := coremocks.NewMockLogger(t)
		credits.EXPECT().Audit(mock.Anything, "user-1").
			Return(entity.NewLedgerAudit("user-1", 15, entity.UsageTotals{Granted: 12}), nil).Once()
		log.EXPECT().Error("Ledger audit mismatch", mock.MatchedBy(func(f map[string]any) bool {
			return f["balance"] == int64(15) && f["reconstructed"] == int64(12)
		})).Return().Once()
		r := authedEngine("/audit", NewCreditHandler(credits, log).Audit)

		// Act
		rec := get(r, "/audit")

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"consistent":false`)
	})
}

func TestEventsHandler_Stream(t *testing.T) {
	t.Run("should surface a subscribe failure as an error response", func(t *testing.T) {
		// Arrange
		subscriber := notificationmocks.NewMockSubscriber(t)
		subscriber.EXPECT().Subscribe(mock.Anything, "user-1").
			Return(nil, errors.Join(errs.ErrDatabaseConnection, errors.New("redis: connection refused"))).Once()
		r := authedEngine("/events", NewEventsHandler(subscriber, time.Second, logger.NewNoopLogger()).Stream)

		// Act
		rec := get(r, "/events")

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.NotContains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	})

	t.Run("should end open streams on close", func(t *testing.T) {
		h := NewEventsHandler(notificationmocks.NewMockSubscriber(t), time.Second, logger.NewNoopLogger())

		h.Close()
		h.Close()

		_, open := <-h.done
		assert.False(t, open)
	})
}

func TestQueryLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]struct {
		want    int
		wantErr bool
	}{
		"":           {0, false},
		"?limit=5":   {5, false},
		"?limit=0":   {0, true},
		"?limit=x":   {0, true},
		"?limit=101": {0, true},
	}
	for query, c := range cases {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Request = httptest.NewRequest(http.MethodGet, "/"+query, nil)

		got, err := queryLimit(ctx)

		if c.wantErr {
			assert.Error(t, err, query)
			continue
		}
		assert.NoError(t, err, query)
		assert.Equal(t, c.want, got, query)
	}
}
