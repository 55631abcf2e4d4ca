package model

import "time"

// BrandModel is the Firestore document shape for 'brands'. The subscription
// mirror fields are written by the billing sync and read by no one here.
type BrandModel struct {
	Name         string `firestore:"name"`
	ContactEmail string `firestore:"contact_email"`
	Timezone     string `firestore:"timezone"`
	Locale       string `firestore:"locale"`

	StripeCustomerID     string     `firestore:"stripe_customer_id"`
	StripeSubscriptionID string     `firestore:"stripe_subscription_id"`
	SubscriptionStatus   string     `firestore:"subscription_status"`
	PlanID               string     `firestore:"plan_id"`
	CurrentPeriodEnd     time.Time  `firestore:"current_period_end"`
	TrialEnd             *time.Time `firestore:"trial_end"`
}

// LocationModel is the Firestore document shape for 'locations'.
type LocationModel struct {
	BrandID string `firestore:"brand_id"`
	Name    string `firestore:"name"`
}

// StaffModel is the Firestore document shape for 'staff'.
type StaffModel struct {
	BrandID  string `firestore:"brand_id"`
	Name     string `firestore:"name"`
	FCMToken string `firestore:"fcm_token"`
}
