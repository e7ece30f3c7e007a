package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Until(t time.Time) time.Duration
	Sleep(d time.Duration)
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}

// IDGenerator produces identifiers for new rows and external references
type IDGenerator interface {
	// NewID returns a globally unique row identifier
	NewID() string
	// NewReference returns an external reference such as TOPUP-1700000000000-1a2b3c4d
	NewReference(prefix string, at time.Time) string
}
