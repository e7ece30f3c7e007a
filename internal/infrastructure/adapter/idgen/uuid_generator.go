package idgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// UUIDGenerator issues random v4 UUIDs and time-prefixed external references
type UUIDGenerator struct{}

var _ core.IDGenerator = UUIDGenerator{}

// NewUUIDGenerator creates a new generator
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NewID returns a random UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewReference returns PREFIX-<unix millis>-<8 hex chars>
func (UUIDGenerator) NewReference(prefix string, at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", prefix, at.UnixMilli(), suffix)
}
