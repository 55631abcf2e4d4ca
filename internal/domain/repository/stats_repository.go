package repository

import (
	"context"

	"rebook/internal/domain/entity"
)

// StatsRepository applies append-only increments to the per-location daily
// and monthly aggregates. Increment methods participate in the completion
// transaction when obtained through a RepositoryFactory.
type StatsRepository interface {
	// IncrementDaily applies one event's delta to the location's daily
	// aggregate for the given yyyy-MM-dd key.
	IncrementDaily(ctx context.Context, locationID, dateKey string, delta entity.DailyDelta) error

	// IncrementMonthly applies one event's delta to the location's monthly
	// aggregate for the given yyyy-MM key.
	IncrementMonthly(ctx context.Context, locationID, monthKey string, delta entity.MonthlyDelta) error

	// RecordNoShow increments the daily no-show counter and sets the
	// appointment's no_show_counted flag in one grouped atomic write.
	RecordNoShow(ctx context.Context, locationID, dateKey, appointmentID string) error
}
