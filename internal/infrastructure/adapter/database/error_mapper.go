package database

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps unit-of-work level database errors (begin, commit) to domain errors.
// Repository errors are already mapped by the repositories themselves.
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a driver error to a domain error. Domain errors and errors the
// classifier does not recognise are returned untouched.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil || isDomainError(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation timed out", errs.ErrDatabaseConnection, operation)
	}
	if m.classifier.Classify(err) == "" {
		return err
	}
	return fmt.Errorf("%s: %w", operation, m.classifier.ToDomainError(err, errs.ErrInternalServer))
}

// IsRetryable reports whether replaying the whole unit of work may succeed
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errs.IsTransient(err) {
		return true
	}
	if isDomainError(err) {
		return false
	}
	return m.classifier.IsLockError(err) || m.classifier.IsTransientError(err)
}

func isDomainError(err error) bool {
	return errs.ErrorCode(err) != errs.CodeInternalServer ||
		errors.Is(err, errs.ErrInternalServer) ||
		errors.Is(err, errs.ErrConstraintViolation)
}
