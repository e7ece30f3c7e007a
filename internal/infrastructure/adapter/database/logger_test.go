package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	clock "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	query := func() (string, int64) {
		return `UPDATE "transactions" SET "status"='PAID' WHERE id = 'txn-1' AND status IN ('PENDING')`, 1
	}

	t.Run("should log failures at error with the request id", func(t *testing.T) {
		// Arrange
		rec := logger.NewRecordingLogger()
		fixed := clock.NewFixedTimeProvider(begin)
		l := NewGormDatabaseLogger(rec, fixed, "warn")
		ctx := coreport.WithRequestID(context.Background(), "req-42")

		// Act
		l.Trace(ctx, begin, query, errors.New("connection reset by peer"))

		// Assert
		entries := rec.Entries()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, coreport.LogLevelError, entries[0].Level)
			assert.Equal(t, "req-42", entries[0].Fields["request_id"])
			assert.Equal(t, "UPDATE", entries[0].Fields["type"])
			assert.Equal(t, "TRANSACTIONS", entries[0].Fields["table"])
		}
	})

	t.Run("should not treat a missing row as an error", func(t *testing.T) {
		rec := logger.NewRecordingLogger()
		l := NewGormDatabaseLogger(rec, clock.NewFixedTimeProvider(begin), "warn")

		l.Trace(context.Background(), begin, query, gorm.ErrRecordNotFound)

		assert.False(t, rec.Has(coreport.LogLevelError, "SQL Error"))
	})

	t.Run("should flag slow queries", func(t *testing.T) {
		rec := logger.NewRecordingLogger()
		fixed := clock.NewFixedTimeProvider(begin)
		fixed.Advance(time.Second)
		l := NewGormDatabaseLogger(rec, fixed, "warn")

		l.Trace(context.Background(), begin, query, nil)

		assert.True(t, rec.Has(coreport.LogLevelWarn, "Slow SQL Query"))
	})

	t.Run("should stay quiet when silent", func(t *testing.T) {
		rec := logger.NewRecordingLogger()
		l := NewGormDatabaseLogger(rec, clock.NewFixedTimeProvider(begin), "silent")

		l.Trace(context.Background(), begin, query, errors.New("boom"))

		assert.Empty(t, rec.Entries())
	})
}

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseGormLogLevel("SILENT"))
	assert.Equal(t, gormlogger.Error, ParseGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, ParseGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, ParseGormLogLevel("debug"))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "CREDIT_USAGES", extractTableName(`INSERT INTO "credit_usages" ("id") VALUES ($1)`))
	assert.Equal(t, "USERS", extractTableName(`SELECT * FROM "users" WHERE id = $1`))
	assert.Equal(t, "", extractTableName(`BEGIN`))
}
