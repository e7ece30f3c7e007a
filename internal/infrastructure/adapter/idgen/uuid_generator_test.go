package idgen

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.NewID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, gen.NewID())
}

func TestNewReference(t *testing.T) {
	gen := NewUUIDGenerator()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	ref := gen.NewReference("TOPUP", at)

	assert.Regexp(t, regexp.MustCompile(`^TOPUP-1709287200000-[0-9a-f]{8}$`), ref)
	assert.NotEqual(t, ref, gen.NewReference("TOPUP", at))
}
