package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domainerrors "rebook/internal/domain/errors"
	"rebook/internal/domain/entity"
	"rebook/internal/domain/repository"
	"rebook/internal/infra/persistence/model"
)

// directoryRepository implements the repository.DirectoryRepository interface.
type directoryRepository struct {
	client *firestore.Client
}

// NewDirectoryRepository is the constructor for directoryRepository.
func NewDirectoryRepository(client *firestore.Client) repository.DirectoryRepository {
	return &directoryRepository{
		client: client,
	}
}

// FindBrand retrieves a brand by its ID.
func (repo *directoryRepository) FindBrand(ctx context.Context, id string) (*entity.Brand, error) {
	snap, err := repo.client.Collection(collectionBrands).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domainerrors.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by ID")
	}

	var brandM model.BrandModel
	if err := snap.DataTo(&brandM); err != nil {
		return nil, errors.Wrap(err, "failed to decode brand")
	}

	return toBrandDomain(snap.Ref.ID, &brandM), nil
}

// FindLocation retrieves a location by its ID.
func (repo *directoryRepository) FindLocation(ctx context.Context, id string) (*entity.Location, error) {
	snap, err := repo.client.Collection(collectionLocations).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	var locationM model.LocationModel
	if err := snap.DataTo(&locationM); err != nil {
		return nil, errors.Wrap(err, "failed to decode location")
	}

	return &entity.Location{ID: snap.Ref.ID, BrandID: locationM.BrandID, Name: locationM.Name}, nil
}

// FindStaff retrieves a staff member by their ID.
func (repo *directoryRepository) FindStaff(ctx context.Context, id string) (*entity.Staff, error) {
	snap, err := repo.client.Collection(collectionStaff).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domainerrors.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by ID")
	}

	var staffM model.StaffModel
	if err := snap.DataTo(&staffM); err != nil {
		return nil, errors.Wrap(err, "failed to decode staff")
	}

	return toStaffDomain(snap.Ref.ID, &staffM), nil
}

// FindBrandsByIDs resolves brands in bulk; absent ids are missing from the result.
func (repo *directoryRepository) FindBrandsByIDs(ctx context.Context, ids []string) (map[string]*entity.Brand, error) {
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.client.Collection(collectionBrands).Doc(id))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brands by IDs")
	}

	brands := make(map[string]*entity.Brand, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var brandM model.BrandModel
		if err := snap.DataTo(&brandM); err != nil {
			return nil, errors.Wrap(err, "failed to decode brand")
		}
		brands[snap.Ref.ID] = toBrandDomain(snap.Ref.ID, &brandM)
	}

	return brands, nil
}

// FindStaffByIDs resolves staff in bulk; absent ids are missing from the result.
func (repo *directoryRepository) FindStaffByIDs(ctx context.Context, ids []string) (map[string]*entity.Staff, error) {
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.client.Collection(collectionStaff).Doc(id))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find staff by IDs")
	}

	staff := make(map[string]*entity.Staff, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var staffM model.StaffModel
		if err := snap.DataTo(&staffM); err != nil {
			return nil, errors.Wrap(err, "failed to decode staff")
		}
		staff[snap.Ref.ID] = toStaffDomain(snap.Ref.ID, &staffM)
	}

	return staff, nil
}

// UpdateBrandSubscription merges the mirrored subscription fields onto the
// brand document.
func (repo *directoryRepository) UpdateBrandSubscription(ctx context.Context, brandID string, sub entity.BrandSubscription) error {
	data := map[string]any{
		"stripe_customer_id":     sub.CustomerID,
		"stripe_subscription_id": sub.SubscriptionID,
		"subscription_status":    sub.Status,
		"plan_id":                sub.PlanID,
		"current_period_end":     sub.PeriodEnd,
	}
	if sub.TrialEnd != nil {
		data["trial_end"] = *sub.TrialEnd
	}

	_, err := repo.client.Collection(collectionBrands).Doc(brandID).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to update brand subscription")
	}

	return nil
}

// --- Mapper Functions ---

// toBrandDomain converts a Firestore BrandModel to a domain Brand entity.
func toBrandDomain(id string, data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:           id,
		Name:         data.Name,
		ContactEmail: data.ContactEmail,
		Timezone:     data.Timezone,
		Locale:       data.Locale,
		Subscription: entity.BrandSubscription{
			CustomerID:     data.StripeCustomerID,
			SubscriptionID: data.StripeSubscriptionID,
			Status:         data.SubscriptionStatus,
			PlanID:         data.PlanID,
			PeriodEnd:      data.CurrentPeriodEnd,
			TrialEnd:       data.TrialEnd,
		},
	}
}

// toStaffDomain converts a Firestore StaffModel to a domain Staff entity.
func toStaffDomain(id string, data *model.StaffModel) *entity.Staff {
	if data == nil {
		return nil
	}

	return &entity.Staff{
		ID:       id,
		BrandID:  data.BrandID,
		Name:     data.Name,
		FCMToken: data.FCMToken,
	}
}
