package entity

import "time"

// CustomerKey identifies a customer metric record within a brand.
type CustomerKey struct {
	BrandID    string `json:"brand_id"`
	CustomerID string `json:"customer_id"`
}

// CustomerMetric is the per-customer, per-brand retention state. It is
// created on the first completed appointment and updated only by the stat
// aggregator and the fan-out engine.
type CustomerMetric struct {
	BrandID              string    `json:"brand_id"`
	CustomerID           string    `json:"customer_id"`
	FullName             string    `json:"full_name"`
	FCMToken             string    `json:"fcm_token"` // push credential; removed when the transport reports it invalid
	LifetimeValue        float64   `json:"lifetime_value"`
	AverageVisitInterval int       `json:"average_visit_interval"` // days; zero means "use the configured default"
	LastBookingDate      time.Time `json:"last_booking_date"`
	NextVisitDue         time.Time `json:"next_visit_due"`
	RemindedThisCycle    bool      `json:"reminded_this_cycle"`
	PreferredStaffID     string    `json:"preferred_staff_id"`
	// LastProcessedAppointmentID strictly gates re-application of a
	// completion event. Once set to an appointment id, that event must
	// never be applied again.
	LastProcessedAppointmentID string    `json:"last_processed_appointment_id"`
	LoyaltyPoints              int64     `json:"loyalty_points"`
	JoinedAt                   time.Time `json:"joined_at"`
}

// Key returns the record's identity.
func (m *CustomerMetric) Key() CustomerKey {
	return CustomerKey{BrandID: m.BrandID, CustomerID: m.CustomerID}
}

// MetricCompletion describes the single-event update the stat aggregator
// applies to a customer metric record inside the completion transaction.
type MetricCompletion struct {
	AppointmentID    string    `json:"appointment_id"`
	Amount           float64   `json:"amount"`
	PreferredStaffID string    `json:"preferred_staff_id"`
	NextVisitDue     time.Time `json:"next_visit_due"`
}
