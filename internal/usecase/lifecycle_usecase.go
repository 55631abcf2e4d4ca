// Package usecase defines the application-level interfaces of the pipeline.
package usecase

import (
	"context"

	"rebook/internal/domain/service"
)

// LifecycleUsecase classifies an appointment state transition and dispatches
// it to the aggregation, reminder or cancellation path. It holds no state.
type LifecycleUsecase interface {
	// HandleChange processes one before/after snapshot pair. Unchanged
	// status is a no-op. Validation gaps are logged and swallowed; only
	// transient dependency failures are returned, so the caller can
	// trigger redelivery.
	HandleChange(ctx context.Context, event *service.AppointmentChangeEvent) error
}
