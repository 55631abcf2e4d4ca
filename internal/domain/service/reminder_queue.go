package service

import (
	"context"
	"time"
)

// ReminderJob is the payload of a deferred single-shot reminder task.
type ReminderJob struct {
	RequestID     string `json:"request_id,omitempty"`
	AppointmentID string `json:"appointment_id" validate:"required"`
}

// ReminderQueue schedules deferred reminder jobs. The appointment id is the
// job's stable identity, so rescheduling is cancel-and-replace and at most
// one pending reminder exists per appointment.
type ReminderQueue interface {
	// Schedule enqueues a job keyed by appointmentID that fires at fireAt.
	// Scheduling an id that is already pending replaces nothing; callers
	// cancel first.
	Schedule(ctx context.Context, appointmentID string, fireAt time.Time) error

	// Cancel removes the pending job for appointmentID. Absence is not an
	// error.
	Cancel(ctx context.Context, appointmentID string) error
}
