package entity

// DailyDelta is one event's contribution to a location's daily aggregate.
// Aggregates are append-only; deltas are applied as atomic increments and
// never overwrite the document wholesale.
type DailyDelta struct {
	Revenue      float64          `json:"revenue"`
	Appointments int64            `json:"appointments"`
	NewCustomers int64            `json:"new_customers"`
	ServiceCount map[string]int64 `json:"service_count"` // per-service booking breakdown
}

// MonthlyDelta is one event's contribution to a location's monthly aggregate.
type MonthlyDelta struct {
	Revenue    float64          `json:"revenue"`
	StaffCount map[string]int64 `json:"staff_count"` // per-staff appointment breakdown
}
