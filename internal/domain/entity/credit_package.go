package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// CreditPackage is a catalog entry: a number of credits sold for a price in rupiah
type CreditPackage struct {
	ID        string
	Name      string
	Credits   int64
	Price     int64
	Active    bool
	SortOrder int
}

// Validate checks the catalog invariants
func (p *CreditPackage) Validate() error {
	if p.ID == "" || p.Name == "" {
		return fmt.Errorf("%w: package id and name are required", errs.ErrInvalidRequest)
	}
	if p.Credits <= 0 || p.Price <= 0 {
		return fmt.Errorf("%w: package %s must have positive credits and price", errs.ErrInvalidRequest, p.ID)
	}
	return nil
}
