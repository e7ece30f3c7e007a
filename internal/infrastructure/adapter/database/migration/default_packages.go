package migration

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

// DefaultPackages is the catalog seeded when no packages are configured
var DefaultPackages = []entity.CreditPackage{
	{ID: "starter", Name: "Starter", Credits: 5, Price: 5000, Active: true, SortOrder: 1},
	{ID: "bengkel", Name: "Bengkel", Credits: 12, Price: 10000, Active: true, SortOrder: 2},
	{ID: "armada", Name: "Armada", Credits: 40, Price: 30000, Active: true, SortOrder: 3},
}

// SeedPackages upserts the catalog so price changes in config reach the database on restart
func SeedPackages(ctx context.Context, repo persistence.CreditPackageRepository, packages []entity.CreditPackage) error {
	if len(packages) == 0 {
		packages = DefaultPackages
	}
	for i := range packages {
		if err := repo.Upsert(ctx, &packages[i]); err != nil {
			return err
		}
	}
	return nil
}
