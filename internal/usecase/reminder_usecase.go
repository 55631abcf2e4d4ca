package usecase

import (
	"context"
	"time"
)

// ReminderUsecase owns the deferred "2 hours before" reminder: scheduling
// with cancel-and-replace semantics, and the dispatch state machine that
// runs when the deferred job fires.
type ReminderUsecase interface {
	// ScheduleReminder computes the fire time from the appointment start,
	// cancels any pending job for the appointment and enqueues a new one.
	// A fire time already in the past is skipped with a log.
	ScheduleReminder(ctx context.Context, appointmentID string, startTime time.Time) error

	// DispatchReminder executes a fired job: re-validates freshness
	// against current state, renders and sends the message, then sets the
	// sent flag. Stale or already-handled jobs are terminal no-ops.
	DispatchReminder(ctx context.Context, appointmentID string) error
}
