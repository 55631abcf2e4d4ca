package repository

import (
	"context"

	"rebook/internal/domain/entity"
)

// DirectoryRepository provides keyed reads of brand, location and staff
// display records, plus the billing mirror write on brands.
type DirectoryRepository interface {
	FindBrand(ctx context.Context, id string) (*entity.Brand, error)
	FindLocation(ctx context.Context, id string) (*entity.Location, error)
	FindStaff(ctx context.Context, id string) (*entity.Staff, error)

	// FindBrandsByIDs resolves brand records in bulk; absent ids are
	// simply missing from the result.
	FindBrandsByIDs(ctx context.Context, ids []string) (map[string]*entity.Brand, error)

	// FindStaffByIDs resolves staff records in bulk; absent ids are
	// simply missing from the result.
	FindStaffByIDs(ctx context.Context, ids []string) (map[string]*entity.Staff, error)

	// UpdateBrandSubscription merges the mirrored subscription fields onto
	// the brand document.
	UpdateBrandSubscription(ctx context.Context, brandID string, sub entity.BrandSubscription) error
}
