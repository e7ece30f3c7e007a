package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

func pgError(code string) error {
	return fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: code, Message: "driver says no"})
}

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"unique violation", pgError("23505"), DuplicateKeyError},
		{"translated duplicate", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"check violation", pgError("23514"), CheckError},
		{"translated check", gorm.ErrCheckConstraintViolated, CheckError},
		{"serialization failure", pgError("40001"), LockError},
		{"deadlock", pgError("40P01"), LockError},
		{"lock not available", pgError("55P03"), LockError},
		{"broken pipe", errors.New("write: broken pipe"), TransientError},
		{"connection class", pgError("08006"), ConnectionError},
		{"foreign key", pgError("23503"), ConstraintError},
		{"unknown", errors.New("something odd"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run("should classify "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_ToDomainError(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("should map record not found to the caller's error", func(t *testing.T) {
		assert.Equal(t, errs.ErrUserNotFound, classifier.ToDomainError(gorm.ErrRecordNotFound, errs.ErrUserNotFound))
	})

	t.Run("should map lock conflicts to concurrent update", func(t *testing.T) {
		assert.ErrorIs(t, classifier.ToDomainError(pgError("40001"), nil), errs.ErrConcurrentUpdate)
	})

	t.Run("should map integrity errors to constraint violation", func(t *testing.T) {
		assert.ErrorIs(t, classifier.ToDomainError(pgError("23505"), nil), errs.ErrConstraintViolation)
	})

	t.Run("should map dropped connections", func(t *testing.T) {
		assert.ErrorIs(t, classifier.ToDomainError(errors.New("dial tcp: connection refused"), nil), errs.ErrDatabaseConnection)
	})

	t.Run("should fall back to internal server error", func(t *testing.T) {
		assert.ErrorIs(t, classifier.ToDomainError(errors.New("syntax error"), nil), errs.ErrInternalServer)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `TOPUP\_1\%2\\`, escapeLike(`TOPUP_1%2\`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
