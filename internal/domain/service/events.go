package service

import "rebook/internal/domain/entity"

// AppointmentChangeEvent is the before/after snapshot pair the booking
// system publishes on every appointment create or update. Delivery is
// at-least-once and possibly out of order; handlers re-read current state
// before acting.
type AppointmentChangeEvent struct {
	RequestID     string              `json:"request_id,omitempty"`
	AppointmentID string              `json:"appointment_id"`
	Before        *entity.Appointment `json:"before,omitempty"` // nil on creation
	After         *entity.Appointment `json:"after"`
}
