package model

import "time"

// AppointmentModel is the Firestore document shape for 'appointments'. The
// document ID is the appointment ID and is not stored as a field.
type AppointmentModel struct {
	BrandID       string    `firestore:"brand_id"`
	CustomerID    string    `firestore:"customer_id"`
	StaffID       string    `firestore:"staff_id"`
	LocationID    string    `firestore:"location_id"`
	StartTime     time.Time `firestore:"start_time"`
	TotalPrice    float64   `firestore:"total_price"`
	ServiceIDs    []string  `firestore:"service_ids"`
	Status        string    `firestore:"status"`
	NoShowCounted bool      `firestore:"no_show_counted"`
	ReminderSent  bool      `firestore:"reminder_sent"`
}
