package firestore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rebook/internal/domain/entity"
	"rebook/internal/domain/repository"
	"rebook/internal/infra/persistence/model"
)

// customerMetricRepository implements the repository.CustomerMetricRepository
// interface. When tx is non-nil, reads and writes go through that
// transaction; otherwise they hit the client directly.
type customerMetricRepository struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// NewCustomerMetricRepository is the constructor for customerMetricRepository.
func NewCustomerMetricRepository(client *firestore.Client) repository.CustomerMetricRepository {
	return &customerMetricRepository{
		client: client,
	}
}

// newCustomerMetricRepositoryTx binds a repository to one transaction.
func newCustomerMetricRepositoryTx(client *firestore.Client, tx *firestore.Transaction) repository.CustomerMetricRepository {
	return &customerMetricRepository{
		client: client,
		tx:     tx,
	}
}

// pageCursor is the serialized resume position of ListDueForReminder.
type pageCursor struct {
	Due  time.Time `json:"due"`
	Path string    `json:"path"`
}

// FindByCustomer retrieves the metric record, or (nil, nil) when absent.
func (repo *customerMetricRepository) FindByCustomer(ctx context.Context, brandID, customerID string) (*entity.CustomerMetric, error) {
	ref := repo.metricRef(brandID, customerID)

	var snap *firestore.DocumentSnapshot
	var err error
	if repo.tx != nil {
		snap, err = repo.tx.Get(ref)
	} else {
		snap, err = ref.Get(ctx)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find customer metric")
	}

	var metricM model.CustomerMetricModel
	if err := snap.DataTo(&metricM); err != nil {
		return nil, errors.Wrap(err, "failed to decode customer metric")
	}

	return toCustomerMetricDomain(brandID, customerID, &metricM), nil
}

// ApplyCompletion merges one completion event into the record. The increment
// and the field sets land in one write, and the record is created when
// absent.
func (repo *customerMetricRepository) ApplyCompletion(ctx context.Context, key entity.CustomerKey, update entity.MetricCompletion) error {
	data := map[string]any{
		"lifetime_value":                firestore.Increment(update.Amount),
		"last_booking_date":             firestore.ServerTimestamp,
		"next_visit_due":                update.NextVisitDue,
		"reminded_this_cycle":           false,
		"last_processed_appointment_id": update.AppointmentID,
	}
	if update.PreferredStaffID != "" {
		data["preferred_staff_id"] = update.PreferredStaffID
	}

	ref := repo.metricRef(key.BrandID, key.CustomerID)
	if repo.tx != nil {
		return errors.Wrap(repo.tx.Set(ref, data, firestore.MergeAll), "failed to apply completion")
	}

	_, err := ref.Set(ctx, data, firestore.MergeAll)

	return errors.Wrap(err, "failed to apply completion")
}

// ListDueForReminder pages through due records across all brands via a
// collection-group query. Ordering by (next_visit_due, document name) makes
// the cursor stable under equal due dates.
func (repo *customerMetricRepository) ListDueForReminder(ctx context.Context, cutoff time.Time, pageSize int, cursor string) ([]*entity.CustomerMetric, string, error) {
	query := repo.client.CollectionGroup(collectionCustomers).
		Where("reminded_this_cycle", "==", false).
		Where("next_visit_due", "<=", cutoff).
		OrderBy("next_visit_due", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(pageSize)

	if cursor != "" {
		pos, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		query = query.StartAfter(pos.Due, pos.Path)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to list due customers")
	}

	metrics := make([]*entity.CustomerMetric, 0, len(snaps))
	for _, snap := range snaps {
		var metricM model.CustomerMetricModel
		if err := snap.DataTo(&metricM); err != nil {
			return nil, "", errors.Wrap(err, "failed to decode customer metric")
		}

		brandID := ""
		if parent := snap.Ref.Parent.Parent; parent != nil {
			brandID = parent.ID
		}
		metrics = append(metrics, toCustomerMetricDomain(brandID, snap.Ref.ID, &metricM))
	}

	nextCursor := ""
	if len(snaps) == pageSize {
		last := snaps[len(snaps)-1]
		nextCursor, err = encodeCursor(pageCursor{
			Due:  metrics[len(metrics)-1].NextVisitDue,
			Path: last.Ref.Path,
		})
		if err != nil {
			return nil, "", err
		}
	}

	return metrics, nextCursor, nil
}

// MarkRemindedThisCycle flags every given record in one atomic batch.
func (repo *customerMetricRepository) MarkRemindedThisCycle(ctx context.Context, keys []entity.CustomerKey) error {
	if len(keys) == 0 {
		return nil
	}

	batch := repo.client.Batch()
	for _, key := range keys {
		batch.Set(repo.metricRef(key.BrandID, key.CustomerID), map[string]any{
			"reminded_this_cycle": true,
		}, firestore.MergeAll)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to mark page reminded")
	}

	return nil
}

// RemoveToken deletes the push credential field.
func (repo *customerMetricRepository) RemoveToken(ctx context.Context, key entity.CustomerKey) error {
	_, err := repo.metricRef(key.BrandID, key.CustomerID).Update(ctx, []firestore.Update{
		{Path: "fcm_token", Value: firestore.Delete},
	})
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Wrap(err, "failed to remove push token")
	}

	return nil
}

func (repo *customerMetricRepository) metricRef(brandID, customerID string) *firestore.DocumentRef {
	return repo.client.Collection(collectionBrands).Doc(brandID).
		Collection(collectionCustomers).Doc(customerID)
}

func encodeCursor(pos pageCursor) (string, error) {
	raw, err := json.Marshal(pos)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode page cursor")
	}

	return base64.URLEncoding.EncodeToString(raw), nil
}

func decodeCursor(cursor string) (pageCursor, error) {
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return pageCursor{}, errors.Wrap(err, "failed to decode page cursor")
	}

	var pos pageCursor
	if err := json.Unmarshal(raw, &pos); err != nil {
		return pageCursor{}, errors.Wrap(err, "failed to decode page cursor")
	}

	return pos, nil
}

// --- Mapper Functions ---

// toCustomerMetricDomain converts a Firestore CustomerMetricModel to a domain CustomerMetric entity.
func toCustomerMetricDomain(brandID, customerID string, data *model.CustomerMetricModel) *entity.CustomerMetric {
	if data == nil {
		return nil
	}

	return &entity.CustomerMetric{
		BrandID:                    brandID,
		CustomerID:                 customerID,
		FullName:                   data.FullName,
		FCMToken:                   data.FCMToken,
		LifetimeValue:              data.LifetimeValue,
		AverageVisitInterval:       data.AverageVisitInterval,
		LastBookingDate:            data.LastBookingDate,
		NextVisitDue:               data.NextVisitDue,
		RemindedThisCycle:          data.RemindedThisCycle,
		PreferredStaffID:           data.PreferredStaffID,
		LastProcessedAppointmentID: data.LastProcessedAppointmentID,
		LoyaltyPoints:              data.LoyaltyPoints,
		JoinedAt:                   data.JoinedAt,
	}
}
