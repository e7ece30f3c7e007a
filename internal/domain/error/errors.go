package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest          = 4000
	CodeWebhookUnauthorized     = 4010
	CodeUnauthenticated         = 4011
	CodeInsufficientCredits     = 4020
	CodeForbidden               = 4030
	CodeTransactionNotFound     = 4040
	CodePackageNotFound         = 4041
	CodeUserNotFound            = 4042
	CodeUnknownProvider         = 4043
	CodeAmbiguousExternalID     = 4090
	CodeLatePayment             = 4091
	CodeInvalidStatusTransition = 4092
	CodeDuplicateExternalID     = 4093
	CodeInvalidAction           = 4220
	CodeInvalidWebhookPayload   = 4221

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeProvider           = 5020
	CodeDatabaseConnection = 5030
	CodeConcurrentUpdate   = 5031
)

var (
	// ErrTransactionNotFound is returned when no transaction matches an externalId or id
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPackageNotFound is returned when the requested credit package doesn't exist or is inactive
	ErrPackageNotFound = errors.New("credit package not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInsufficientCredits is returned when a debit would take a balance below zero
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrProvider is returned when a payment provider call fails or returns malformed data
	ErrProvider = errors.New("payment provider error")

	// ErrUnknownProvider is returned when no adapter is registered under a provider name
	ErrUnknownProvider = errors.New("unknown payment provider")

	// ErrWebhookUnauthorized is returned when a webhook fails shared-secret verification
	ErrWebhookUnauthorized = errors.New("webhook authentication failed")

	// ErrInvalidWebhookPayload is returned when a webhook body can't be parsed
	ErrInvalidWebhookPayload = errors.New("invalid webhook payload")

	// ErrWebhookIgnored is returned for authentic webhooks that carry no payment state (test pings, unrelated events)
	ErrWebhookIgnored = errors.New("webhook ignored")

	// ErrLatePayment is returned when a settlement arrives for a transaction that already expired or failed
	ErrLatePayment = errors.New("payment reported for a transaction that is no longer pending")

	// ErrAmbiguousExternalID is returned when a contains-match resolves to more than one transaction
	ErrAmbiguousExternalID = errors.New("external id matches more than one transaction")

	// ErrInvalidStatusTransition is returned when a status change would leave a terminal state
	ErrInvalidStatusTransition = errors.New("invalid transaction status transition")

	// ErrAmountAlreadyCorrected is returned when a second amount correction is attempted
	ErrAmountAlreadyCorrected = errors.New("transaction amount was already corrected")

	// ErrDuplicateExternalID is returned when an external id is already taken
	ErrDuplicateExternalID = errors.New("external id already exists")

	// ErrUnauthenticated is returned when a user request carries no valid bearer token
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the caller doesn't own the resource
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAction is returned when a debit names an action without a configured cost
	ErrInvalidAction = errors.New("invalid credit action")

	// ErrConcurrentUpdate is returned when the store aborts a unit of work because of a conflicting writer
	ErrConcurrentUpdate = errors.New("concurrent update conflict")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrWebhookUnauthorized):
		return CodeWebhookUnauthorized
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrPackageNotFound):
		return CodePackageNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrUnknownProvider):
		return CodeUnknownProvider
	case errors.Is(err, ErrAmbiguousExternalID):
		return CodeAmbiguousExternalID
	case errors.Is(err, ErrLatePayment):
		return CodeLatePayment
	case errors.Is(err, ErrInvalidStatusTransition), errors.Is(err, ErrAmountAlreadyCorrected):
		return CodeInvalidStatusTransition
	case errors.Is(err, ErrDuplicateExternalID):
		return CodeDuplicateExternalID
	case errors.Is(err, ErrInvalidAction):
		return CodeInvalidAction
	case errors.Is(err, ErrInvalidWebhookPayload):
		return CodeInvalidWebhookPayload
	case errors.Is(err, ErrProvider):
		return CodeProvider
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the status code returned to API callers
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidWebhookPayload):
		return http.StatusBadRequest
	case errors.Is(err, ErrWebhookUnauthorized), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInsufficientCredits):
		return http.StatusPaymentRequired
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case IsNotFoundError(err), errors.Is(err, ErrUnknownProvider):
		return http.StatusNotFound
	case errors.Is(err, ErrAmbiguousExternalID),
		errors.Is(err, ErrLatePayment),
		errors.Is(err, ErrInvalidStatusTransition),
		errors.Is(err, ErrAmountAlreadyCorrected),
		errors.Is(err, ErrDuplicateExternalID):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidAction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrProvider):
		return http.StatusBadGateway
	case errors.Is(err, ErrDatabaseConnection), errors.Is(err, ErrConcurrentUpdate):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ProviderError describes a failed call to a payment provider
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface for ProviderError
func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s failed with HTTP %d: %v", e.Provider, e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports every ProviderError as ErrProvider
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// LogFields returns a map of fields for structured logging
func (e *ProviderError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "provider_error",
		"provider":   e.Provider,
		"operation":  e.Operation,
		"error_code": CodeProvider,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	if e.StatusCode > 0 {
		fields["status_code"] = e.StatusCode
	}
	if e.Body != "" {
		fields["body"] = e.Body
	}
	return fields
}

// NewProviderError creates a provider error; body is truncated for logging
func NewProviderError(provider, operation string, statusCode int, body string, err error) error {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	if err == nil {
		err = ErrProvider
	}
	return &ProviderError{
		Provider:   provider,
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// InsufficientCreditsError provides detailed error information for a rejected debit
type InsufficientCreditsError struct {
	UserID    string
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %s: required %d, available %d",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID string, required, available int64) error {
	return &InsufficientCreditsError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// ReconciliationError wraps a failure while applying a payment event
type ReconciliationError struct {
	ExternalID string
	Stage      string
	Err        error
}

// Error implements the error interface for ReconciliationError
func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation of %s failed at %s: %v", e.ExternalID, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReconciliationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "reconciliation_error",
		"external_id": e.ExternalID,
		"stage":       e.Stage,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewReconciliationError creates a reconciliation error for the given stage
func NewReconciliationError(externalID, stage string, err error) error {
	return &ReconciliationError{
		ExternalID: externalID,
		Stage:      stage,
		Err:        err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrPackageNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsInsufficientCreditsError checks if the error is a rejected debit
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsTransient reports whether retrying the same unit of work may succeed
func IsTransient(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate) || errors.Is(err, ErrDatabaseConnection)
}

// LogFields extracts structured fields from typed errors, falling back to the message
func LogFields(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		return withFields.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}
