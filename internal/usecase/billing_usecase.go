package usecase

import (
	"context"
	"time"
)

// SubscriptionEvent is the decoded payload of a billing provider webhook.
// Field mapping is 1:1; no pipeline logic depends on it.
type SubscriptionEvent struct {
	Type           string     `json:"type"`
	BrandID        string     `json:"brand_id"`
	CustomerID     string     `json:"customer_id"`
	SubscriptionID string     `json:"subscription_id"`
	Status         string     `json:"status"`
	PlanID         string     `json:"plan_id"`
	PeriodEnd      time.Time  `json:"period_end"`
	TrialEnd       *time.Time `json:"trial_end,omitempty"`
}

// BillingUsecase mirrors payment-subscription state onto brand records.
type BillingUsecase interface {
	// SyncSubscription applies one webhook event to the brand's billing
	// mirror fields.
	SyncSubscription(ctx context.Context, event *SubscriptionEvent) error
}
