package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

var maxAmount = decimal.NewFromInt(1 << 53)

// AmountFromDecimal converts a provider-reported amount to whole rupiah.
// Rupiah has no minor unit in practice, so fractional values are rejected rather than rounded.
func AmountFromDecimal(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: amount cannot be negative: %s", errs.ErrInvalidRequest, d.String())
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: fractional rupiah amount: %s", errs.ErrInvalidRequest, d.String())
	}
	if d.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: amount out of range: %s", errs.ErrInvalidRequest, d.String())
	}
	return d.IntPart(), nil
}

// ParseAmount parses a decimal string such as "5000" or "5000.00" into whole rupiah
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", errs.ErrInvalidRequest, s)
	}
	return AmountFromDecimal(d)
}

// RoundUpToUnit rounds amount up to the next multiple of unit and returns the unit count
func RoundUpToUnit(amount, unit int64) (rounded int64, units int64) {
	if unit <= 0 {
		return amount, 1
	}
	units = (amount + unit - 1) / unit
	if units == 0 {
		units = 1
	}
	return units * unit, units
}

// FormatRupiah renders an amount with dot thousands separators, e.g. "Rp 25.000"
func FormatRupiah(amount int64) string {
	d := decimal.NewFromInt(amount)
	s := d.StringFixed(0)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-Rp " + string(out)
	}
	return "Rp " + string(out)
}
