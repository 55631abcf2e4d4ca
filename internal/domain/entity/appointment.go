// Package entity contains the core business objects of the project.
package entity

import "time"

// AppointmentStatus is the lifecycle state of an appointment, owned by the
// booking flow. The pipeline only reads it.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentNoShow    AppointmentStatus = "no_show"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a single booking. The booking system creates and
// mutates it; this pipeline consumes it read-only except for the two
// idempotency flags, which are set once and never reset.
type Appointment struct {
	ID            string            `json:"id"`
	BrandID       string            `json:"brand_id"`
	CustomerID    string            `json:"customer_id"`
	StaffID       string            `json:"staff_id"`
	LocationID    string            `json:"location_id"`
	StartTime     time.Time         `json:"start_time"`
	TotalPrice    float64           `json:"total_price"`
	ServiceIDs    []string          `json:"service_ids"`
	Status        AppointmentStatus `json:"status"`
	NoShowCounted bool              `json:"no_show_counted"` // guards the no-show counter
	ReminderSent  bool              `json:"reminder_sent"`   // guards the 2-hour reminder
}
