package usecase

import (
	"context"

	"rebook/internal/domain/entity"
)

// AggregationUsecase applies one appointment outcome to the business
// statistics, exactly once per appointment.
type AggregationUsecase interface {
	// RecordCompletion applies a completion event to the customer metric
	// record and the location's daily/monthly aggregates in one atomic
	// transaction. Replays are silent no-ops.
	RecordCompletion(ctx context.Context, appt *entity.Appointment) error

	// RecordNoShow increments the daily no-show counter once per
	// appointment, gated by the appointment's no_show_counted flag.
	RecordNoShow(ctx context.Context, appt *entity.Appointment) error
}
