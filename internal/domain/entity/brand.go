package entity

import "time"

// Brand is an independent business account sharing the platform. The pipeline
// reads its display profile for message rendering and mirrors subscription
// state onto it from billing webhooks.
type Brand struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Timezone     string `json:"timezone"` // IANA name; empty means "use the deployment default"
	Locale       string `json:"locale"`   // message locale, e.g. "hr", "en"

	Subscription BrandSubscription `json:"subscription"`
}

// BrandSubscription is the billing state mirrored 1:1 from the payment
// provider. No pipeline logic depends on it beyond storage.
type BrandSubscription struct {
	CustomerID     string     `json:"customer_id"`
	SubscriptionID string     `json:"subscription_id"`
	Status         string     `json:"status"` // active, trialing, past_due, canceled, unpaid
	PlanID         string     `json:"plan_id"`
	PeriodEnd      time.Time  `json:"period_end"`
	TrialEnd       *time.Time `json:"trial_end,omitempty"`
}
