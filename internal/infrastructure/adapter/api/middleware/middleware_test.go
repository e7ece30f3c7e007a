package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/auth"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
)

type stubVerifier struct {
	identity auth.Identity
	err      error
	got      string
}

func (v *stubVerifier) Verify(token string) (auth.Identity, error) {
	v.got = token
	return v.identity, v.err
}

func newEngine(log coreport.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), ErrorHandler(log))
	return r
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("should propagate the caller's id into the request context", func(t *testing.T) {
		r := newEngine(logger.NewNoopLogger())
		var fromCtx string
		r.GET("/x", func(c *gin.Context) {
			fromCtx = coreport.RequestIDFromContext(c.Request.Context())
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderRequestID, "req-42")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", fromCtx)
		assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
	})

	t.Run("should generate an id when none is sent", func(t *testing.T) {
		r := newEngine(logger.NewNoopLogger())
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Len(t, rec.Header().Get(HeaderRequestID), 36)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("should expose the caller to handlers", func(t *testing.T) {
		verifier := &stubVerifier{identity: auth.Identity{UserID: "user-1", Email: "a@b.c"}}
		r := newEngine(logger.NewNoopLogger())
		r.GET("/me", Authenticate(verifier), func(c *gin.Context) {
			c.String(http.StatusOK, UserID(c)+"|"+UserEmail(c))
		})

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "bearer tok-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1|a@b.c", rec.Body.String())
		assert.Equal(t, "tok-1", verifier.got)
	})

	t.Run("should accept the query token for event streams", func(t *testing.T) {
		verifier := &stubVerifier{identity: auth.Identity{UserID: "user-1"}}
		r := newEngine(logger.NewNoopLogger())
		r.GET("/events", Authenticate(verifier), func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events?access_token=tok-2", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tok-2", verifier.got)
	})

	t.Run("should answer 401 for bad tokens", func(t *testing.T) {
		verifier := &stubVerifier{err: errs.ErrUnauthenticated}
		r := newEngine(logger.NewNoopLogger())
		r.GET("/me", Authenticate(verifier), func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, verifier.got)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should hide internal error details", func(t *testing.T) {
		rec := logger.NewRecordingLogger()
		r := newEngine(rec)
		r.GET("/boom", func(c *gin.Context) { _ = c.Error(context.DeadlineExceeded) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "deadline")
		assert.Contains(t, w.Body.String(), `"requestId":"`+w.Header().Get(HeaderRequestID)+`"`)
		assert.True(t, rec.Has(coreport.LogLevelError, "Request failed"))
	})

	t.Run("should recover from panics", func(t *testing.T) {
		rec := logger.NewRecordingLogger()
		r := newEngine(rec)
		r.GET("/panic", func(c *gin.Context) { panic("nil map") })

		w := httptest.NewRecorder()
		require.NotPanics(t, func() { r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil)) })

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.True(t, rec.Has(coreport.LogLevelError, "Panic recovered in API request"))
	})

	t.Run("should leave written responses alone", func(t *testing.T) {
		r := newEngine(logger.NewNoopLogger())
		r.GET("/ok", func(c *gin.Context) {
			c.Status(http.StatusAccepted)
			c.Writer.WriteHeaderNow()
			_ = c.Error(errs.ErrInvalidRequest)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})
}
