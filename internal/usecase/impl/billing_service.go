package impl

import (
	"context"
	"log/slog"

	deliverycontext "rebook/internal/delivery/context"
	"rebook/internal/domain/entity"
	"rebook/internal/domain/repository"
	"rebook/internal/errors"
	"rebook/internal/usecase"
)

const (
	eventSubscriptionCreated = "customer.subscription.created"
	eventSubscriptionUpdated = "customer.subscription.updated"
	eventSubscriptionDeleted = "customer.subscription.deleted"
	eventPaymentFailed       = "invoice.payment_failed"

	subscriptionStatusCanceled = "canceled"
)

type billingService struct {
	logger        *slog.Logger
	directoryRepo repository.DirectoryRepository
}

// NewBillingService creates the subscription mirror.
func NewBillingService(logger *slog.Logger, directoryRepo repository.DirectoryRepository) usecase.BillingUsecase {
	return &billingService{
		logger:        logger,
		directoryRepo: directoryRepo,
	}
}

// SyncSubscription copies the provider's subscription state onto the brand
// record. The mapping is 1:1; no pipeline behavior keys off these fields.
func (s *billingService) SyncSubscription(ctx context.Context, event *usecase.SubscriptionEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if event.BrandID == "" {
		logger.Warn("billing event missing brand id",
			slog.String("type", event.Type),
			slog.String("subscription_id", event.SubscriptionID),
		)

		return nil
	}

	switch event.Type {
	case eventSubscriptionCreated, eventSubscriptionUpdated:
		sub := entity.BrandSubscription{
			CustomerID:     event.CustomerID,
			SubscriptionID: event.SubscriptionID,
			Status:         event.Status,
			PlanID:         event.PlanID,
			PeriodEnd:      event.PeriodEnd,
			TrialEnd:       event.TrialEnd,
		}
		if err := s.directoryRepo.UpdateBrandSubscription(ctx, event.BrandID, sub); err != nil {
			return errors.Wrap(err, "update brand subscription")
		}

	case eventSubscriptionDeleted:
		sub := entity.BrandSubscription{
			CustomerID:     event.CustomerID,
			SubscriptionID: event.SubscriptionID,
			Status:         subscriptionStatusCanceled,
			PlanID:         event.PlanID,
			PeriodEnd:      event.PeriodEnd,
		}
		if err := s.directoryRepo.UpdateBrandSubscription(ctx, event.BrandID, sub); err != nil {
			return errors.Wrap(err, "cancel brand subscription")
		}

	case eventPaymentFailed:
		// Dunning is the provider's job; this side only records the
		// occurrence.
		logger.Warn("subscription payment failed",
			slog.String("brand_id", event.BrandID),
			slog.String("subscription_id", event.SubscriptionID),
		)

		return nil

	default:
		logger.Info("ignoring billing event",
			slog.String("type", event.Type),
		)

		return nil
	}

	logger.Info("synced brand subscription",
		slog.String("brand_id", event.BrandID),
		slog.String("type", event.Type),
		slog.String("status", event.Status),
	)

	return nil
}
