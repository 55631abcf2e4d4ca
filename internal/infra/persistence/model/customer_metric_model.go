package model

import "time"

// CustomerMetricModel is the Firestore document shape for customer metric
// records at 'brands/{brandId}/customers/{customerId}'. Brand and customer
// IDs come from the document path.
type CustomerMetricModel struct {
	FullName                   string    `firestore:"full_name"`
	FCMToken                   string    `firestore:"fcm_token"`
	LifetimeValue              float64   `firestore:"lifetime_value"`
	AverageVisitInterval       int       `firestore:"average_visit_interval"`
	LastBookingDate            time.Time `firestore:"last_booking_date"`
	NextVisitDue               time.Time `firestore:"next_visit_due"`
	RemindedThisCycle          bool      `firestore:"reminded_this_cycle"`
	PreferredStaffID           string    `firestore:"preferred_staff_id"`
	LastProcessedAppointmentID string    `firestore:"last_processed_appointment_id"`
	LoyaltyPoints              int64     `firestore:"loyalty_points"`
	JoinedAt                   time.Time `firestore:"joined_at"`
}
