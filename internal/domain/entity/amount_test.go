package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"5000", 5000, false},
		{"5000.00", 5000, false},
		{"0", 0, false},
		{"5000.5", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, errs.ErrInvalidRequest, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAmountFromDecimal(t *testing.T) {
	got, err := AmountFromDecimal(decimal.RequireFromString("25000"))
	require.NoError(t, err)
	assert.Equal(t, int64(25000), got)
}

func TestRoundUpToUnit(t *testing.T) {
	rounded, units := RoundUpToUnit(5000, 1000)
	assert.Equal(t, int64(5000), rounded)
	assert.Equal(t, int64(5), units)

	rounded, units = RoundUpToUnit(5001, 1000)
	assert.Equal(t, int64(6000), rounded)
	assert.Equal(t, int64(6), units)

	rounded, units = RoundUpToUnit(0, 1000)
	assert.Equal(t, int64(1000), rounded)
	assert.Equal(t, int64(1), units)
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 25.000", FormatRupiah(25000))
	assert.Equal(t, "Rp 1.500.000", FormatRupiah(1500000))
	assert.Equal(t, "Rp 500", FormatRupiah(500))
	assert.Equal(t, "-Rp 2.000", FormatRupiah(-2000))
}
