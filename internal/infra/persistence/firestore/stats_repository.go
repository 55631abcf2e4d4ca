package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"rebook/internal/domain/entity"
	"rebook/internal/domain/repository"
)

// statsRepository implements the repository.StatsRepository interface. All
// writes are merge-sets built from field increments, so aggregate documents
// are created on first touch and never read.
type statsRepository struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(client *firestore.Client) repository.StatsRepository {
	return &statsRepository{
		client: client,
	}
}

// newStatsRepositoryTx binds a repository to one transaction.
func newStatsRepositoryTx(client *firestore.Client, tx *firestore.Transaction) repository.StatsRepository {
	return &statsRepository{
		client: client,
		tx:     tx,
	}
}

// dailyStatsData builds the merge-set increments for one daily delta.
func dailyStatsData(delta entity.DailyDelta) map[string]any {
	data := map[string]any{
		"total_revenue":      firestore.Increment(delta.Revenue),
		"appointments_count": firestore.Increment(delta.Appointments),
	}
	if delta.NewCustomers != 0 {
		data["new_customers"] = firestore.Increment(delta.NewCustomers)
	}
	if len(delta.ServiceCount) > 0 {
		breakdown := make(map[string]any, len(delta.ServiceCount))
		for serviceID, count := range delta.ServiceCount {
			breakdown[serviceID] = firestore.Increment(count)
		}
		data["service_breakdown"] = breakdown
	}

	return data
}

// monthlyStatsData builds the merge-set increments for one monthly delta.
func monthlyStatsData(delta entity.MonthlyDelta) map[string]any {
	data := map[string]any{
		"total_revenue": firestore.Increment(delta.Revenue),
	}
	if len(delta.StaffCount) > 0 {
		staff := make(map[string]any, len(delta.StaffCount))
		for staffID, count := range delta.StaffCount {
			staff[staffID] = firestore.Increment(count)
		}
		data["staff_appointments"] = staff
	}

	return data
}

// IncrementDaily applies one event's delta to the location's daily aggregate.
func (repo *statsRepository) IncrementDaily(ctx context.Context, locationID, dateKey string, delta entity.DailyDelta) error {
	ref := repo.client.Collection(collectionLocations).Doc(locationID).
		Collection(collectionDailyStats).Doc(dateKey)

	return errors.Wrap(repo.set(ctx, ref, dailyStatsData(delta)), "failed to increment daily stats")
}

// IncrementMonthly applies one event's delta to the location's monthly aggregate.
func (repo *statsRepository) IncrementMonthly(ctx context.Context, locationID, monthKey string, delta entity.MonthlyDelta) error {
	ref := repo.client.Collection(collectionLocations).Doc(locationID).
		Collection(collectionMonthlyStats).Doc(monthKey)

	return errors.Wrap(repo.set(ctx, ref, monthlyStatsData(delta)), "failed to increment monthly stats")
}

// RecordNoShow increments the daily no-show counter and sets the
// appointment's no_show_counted flag in one atomic batch.
func (repo *statsRepository) RecordNoShow(ctx context.Context, locationID, dateKey, appointmentID string) error {
	statsRef := repo.client.Collection(collectionLocations).Doc(locationID).
		Collection(collectionDailyStats).Doc(dateKey)
	appointmentRef := repo.client.Collection(collectionAppointments).Doc(appointmentID)

	batch := repo.client.Batch()
	batch.Set(statsRef, map[string]any{
		"no_shows": firestore.Increment(1),
	}, firestore.MergeAll)
	batch.Set(appointmentRef, map[string]any{
		"no_show_counted": true,
	}, firestore.MergeAll)

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to record no-show")
	}

	return nil
}

func (repo *statsRepository) set(ctx context.Context, ref *firestore.DocumentRef, data map[string]any) error {
	if repo.tx != nil {
		return repo.tx.Set(ref, data, firestore.MergeAll)
	}

	_, err := ref.Set(ctx, data, firestore.MergeAll)

	return err
}
