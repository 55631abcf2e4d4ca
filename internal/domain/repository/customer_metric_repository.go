package repository

import (
	"context"
	"time"

	"rebook/internal/domain/entity"
)

// CustomerMetricRepository manages the per-customer, per-brand retention
// records. Find and ApplyCompletion participate in the completion
// transaction when obtained through a RepositoryFactory.
type CustomerMetricRepository interface {
	// FindByCustomer returns the metric record, or (nil, nil) when the
	// customer has no record yet (first completed appointment).
	FindByCustomer(ctx context.Context, brandID, customerID string) (*entity.CustomerMetric, error)

	// ApplyCompletion merges one completion event into the record:
	// lifetime value is incremented, the reminder-cycle flag is reset,
	// preferred staff and the idempotency token are set. Creates the
	// record when absent.
	ApplyCompletion(ctx context.Context, key entity.CustomerKey, update entity.MetricCompletion) error

	// ListDueForReminder pages through records across all brands where
	// next_visit_due <= cutoff and reminded_this_cycle is false, ordered
	// by due date. An empty cursor starts from the beginning; the returned
	// cursor resumes after the last record and is empty on the final page.
	ListDueForReminder(ctx context.Context, cutoff time.Time, pageSize int, cursor string) ([]*entity.CustomerMetric, string, error)

	// MarkRemindedThisCycle sets reminded_this_cycle on every given record
	// using grouped atomic writes.
	MarkRemindedThisCycle(ctx context.Context, keys []entity.CustomerKey) error

	// RemoveToken deletes the push credential field so no further send
	// attempt targets a token the transport reported permanently invalid.
	RemoveToken(ctx context.Context, key entity.CustomerKey) error
}
