package repository

import (
	"context"

	"rebook/internal/domain/entity"
)

// AppointmentRepository reads appointments and owns the pipeline's two
// idempotency flags on them.
type AppointmentRepository interface {
	// FindByID returns the current appointment or domain errors.ErrAppointmentNotFound.
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)

	// MarkReminderSent sets the reminder_sent flag. The flag is never reset.
	MarkReminderSent(ctx context.Context, id string) error
}
