package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"PackageNotFound", ErrPackageNotFound, 4041},
		{"InsufficientCredits", ErrInsufficientCredits, 4020},
		{"WebhookUnauthorized", ErrWebhookUnauthorized, 4010},
		{"Unauthenticated", ErrUnauthenticated, 4011},
		{"Ambiguous", ErrAmbiguousExternalID, 4090},
		{"LatePayment", ErrLatePayment, 4091},
		{"Provider", ErrProvider, 5020},
		{"ConcurrentUpdate", ErrConcurrentUpdate, 5031},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrPackageNotFound), 4041},
		{"TypedProviderError", NewProviderError("xendit", "create_payment", 500, "", nil), 5020},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"NotFound", ErrTransactionNotFound, http.StatusNotFound},
		{"UnknownProvider", ErrUnknownProvider, http.StatusNotFound},
		{"Unauthorized", ErrWebhookUnauthorized, http.StatusUnauthorized},
		{"Unauthenticated", fmt.Errorf("%w: expired", ErrUnauthenticated), http.StatusUnauthorized},
		{"InsufficientCredits", NewInsufficientCreditsError("u1", 2, 1), http.StatusPaymentRequired},
		{"Forbidden", ErrForbidden, http.StatusForbidden},
		{"BadPayload", ErrInvalidWebhookPayload, http.StatusBadRequest},
		{"Ambiguous", ErrAmbiguousExternalID, http.StatusConflict},
		{"Provider", NewProviderError("qrispolling", "check_status", 0, "", errors.New("timeout")), http.StatusBadGateway},
		{"Database", fmt.Errorf("%w: refused", ErrDatabaseConnection), http.StatusServiceUnavailable},
		{"Reconciliation", NewReconciliationError("TRX-1", "grant", ErrUserNotFound), http.StatusNotFound},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestProviderError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewProviderError("xendit", "create_payment", 503, "upstream unavailable", cause)

	if !errors.Is(err, ErrProvider) {
		t.Errorf("errors.Is(err, ErrProvider) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	expected := "xendit create_payment failed with HTTP 503: connection reset"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("errors.As(err, *ProviderError) = false")
	}
	fields := pe.LogFields()
	if fields["status_code"] != 503 || fields["provider"] != "xendit" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestProviderErrorTruncatesBody(t *testing.T) {
	body := make([]byte, 2000)
	for i := range body {
		body[i] = 'x'
	}
	err := NewProviderError("trakteer", "create_payment", 500, string(body), nil).(*ProviderError)

	if len(err.Body) != 512 {
		t.Errorf("len(Body) = %d, want 512", len(err.Body))
	}
	if !errors.Is(err, ErrProvider) {
		t.Errorf("nil cause should still match ErrProvider")
	}
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError("user-1", 3, 1)

	if !IsInsufficientCreditsError(err) {
		t.Errorf("IsInsufficientCreditsError() = false, want true")
	}
	expected := "insufficient credits for user user-1: required 3, available 1"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if ErrorCode(err) != CodeInsufficientCredits {
		t.Errorf("ErrorCode() = %d, want %d", ErrorCode(err), CodeInsufficientCredits)
	}
}

func TestReconciliationErrorUnwrap(t *testing.T) {
	err := NewReconciliationError("TRX-9", "mark_paid", ErrConcurrentUpdate)

	if !errors.Is(err, ErrConcurrentUpdate) {
		t.Errorf("errors.Is(err, ErrConcurrentUpdate) = false, want true")
	}
	if !IsTransient(err) {
		t.Errorf("IsTransient() = false, want true")
	}
	if IsTransient(ErrTransactionNotFound) {
		t.Errorf("IsTransient(ErrTransactionNotFound) = true, want false")
	}
}

func TestLogFields(t *testing.T) {
	fields := LogFields(NewInsufficientCreditsError("u", 1, 0))
	if fields["error_type"] != "insufficient_credits" {
		t.Errorf("typed error fields not used: %v", fields)
	}

	fields = LogFields(ErrPackageNotFound)
	if fields["error_code"] != CodePackageNotFound {
		t.Errorf("fallback fields = %v", fields)
	}
}
