package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rebook/config"
	deliverycontext "rebook/internal/delivery/context"
	"rebook/internal/domain/entity"
	"rebook/internal/domain/repository"
	"rebook/internal/domain/service"
	"rebook/internal/errors"
	"rebook/internal/usecase"
)

type fanoutService struct {
	logger        *slog.Logger
	retention     config.RetentionConfig
	metricRepo    repository.CustomerMetricRepository
	directoryRepo repository.DirectoryRepository
	queue         service.FanoutQueue
	sender        service.PushSender
}

// NewFanoutService creates the daily retention fan-out engine.
func NewFanoutService(
	logger *slog.Logger,
	cfg *config.Config,
	metricRepo repository.CustomerMetricRepository,
	directoryRepo repository.DirectoryRepository,
	queue service.FanoutQueue,
	sender service.PushSender,
) usecase.FanoutUsecase {
	return &fanoutService{
		logger:        logger,
		retention:     cfg.Retention,
		metricRepo:    metricRepo,
		directoryRepo: directoryRepo,
		queue:         queue,
		sender:        sender,
	}
}

// StartDailyRun publishes the first page of a fan-out chain. The cutoff is
// the end of the current day in the deployment time zone, so every customer
// whose due date falls today or earlier is included.
func (s *fanoutService) StartDailyRun(ctx context.Context, now time.Time) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	loc, err := time.LoadLocation(s.retention.Timezone)
	if err != nil {
		return errors.Wrapf(err, "invalid time zone %q", s.retention.Timezone)
	}

	local := now.In(loc)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999*int(time.Millisecond), loc)

	job := &service.FanoutJob{
		RequestID: uuid.NewString(),
		Cutoff:    cutoff,
		Page:      0,
	}
	if err := s.queue.PublishPage(ctx, job); err != nil {
		return errors.Wrap(err, "publish first fan-out page")
	}

	logger.Info("started daily fan-out run",
		slog.String("request_id", job.RequestID),
		slog.Time("cutoff", cutoff),
	)

	return nil
}

// ProcessPage handles one page of the chain. A record counts as handled the
// moment a send is attempted for it, regardless of the outcome, so a
// redelivered page cannot double-notify customers beyond its own records.
func (s *fanoutService) ProcessPage(ctx context.Context, job *service.FanoutJob) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	pageSize := s.retention.PageSize
	metrics, nextCursor, err := s.metricRepo.ListDueForReminder(ctx, job.Cutoff, pageSize, job.Cursor)
	if err != nil {
		return errors.Wrap(err, "list due customers")
	}

	if len(metrics) == 0 {
		logger.Info("fan-out run complete",
			slog.String("request_id", job.RequestID),
			slog.Int("page", job.Page),
		)

		return nil
	}

	msgs, senders := s.buildPageMessages(ctx, logger, metrics)

	var invalidKeys []entity.CustomerKey
	if len(msgs) > 0 {
		results, err := s.sender.SendBulk(ctx, msgs)
		if err != nil {
			return errors.Wrap(err, "bulk send failed")
		}

		var sent, failed int
		for i, res := range results {
			switch {
			case res.Err == nil:
				sent++
			case res.Invalid:
				failed++
				invalidKeys = append(invalidKeys, senders[i].Key())
			default:
				failed++
				logger.Warn("fan-out send failed",
					slog.String("customer_id", senders[i].CustomerID),
					slog.Any("error", res.Err),
				)
			}
		}

		logger.Info("fan-out page sent",
			slog.String("request_id", job.RequestID),
			slog.Int("page", job.Page),
			slog.Int("sent", sent),
			slog.Int("failed", failed),
		)
	}

	for _, key := range invalidKeys {
		if err := s.metricRepo.RemoveToken(ctx, key); err != nil {
			logger.Warn("failed to remove invalid push token",
				slog.String("customer_id", key.CustomerID),
				slog.Any("error", err),
			)
		}
	}

	// Every record on the page is flagged, including skipped and failed
	// sends. The cycle flag means "handled this cycle", not "delivered".
	keys := make([]entity.CustomerKey, 0, len(metrics))
	for _, m := range metrics {
		keys = append(keys, m.Key())
	}
	if err := s.metricRepo.MarkRemindedThisCycle(ctx, keys); err != nil {
		return errors.Wrap(err, "mark page reminded")
	}

	// A short page means the query is exhausted; only full pages continue
	// the chain.
	if len(metrics) < pageSize || nextCursor == "" {
		logger.Info("fan-out run complete",
			slog.String("request_id", job.RequestID),
			slog.Int("page", job.Page),
		)

		return nil
	}

	next := &service.FanoutJob{
		RequestID: job.RequestID,
		Cutoff:    job.Cutoff,
		Cursor:    nextCursor,
		Page:      job.Page + 1,
	}
	if err := s.queue.PublishPage(ctx, next); err != nil {
		return errors.Wrap(err, "publish continuation page")
	}

	return nil
}

// buildPageMessages renders the retention nudge for every record that has a
// push credential. senders[i] is the record behind msgs[i], used to map bulk
// results back to customers.
func (s *fanoutService) buildPageMessages(
	ctx context.Context,
	logger *slog.Logger,
	metrics []*entity.CustomerMetric,
) (msgs []service.PushMessage, senders []*entity.CustomerMetric) {
	brands := s.resolveBrands(ctx, logger, metrics)
	staff := s.resolveStaff(ctx, logger, metrics)

	msgs = make([]service.PushMessage, 0, len(metrics))
	senders = make([]*entity.CustomerMetric, 0, len(metrics))

	for _, m := range metrics {
		if m.FCMToken == "" {
			continue
		}

		locale := localeCroatian
		if brand, ok := brands[m.BrandID]; ok && brand.Locale != "" {
			locale = brand.Locale
		}

		staffName := ""
		if st, ok := staff[m.PreferredStaffID]; ok {
			staffName = st.Name
		}

		title, body := visitReminderMessage(locale, m.FullName, staffName)
		msgs = append(msgs, service.PushMessage{
			Token: m.FCMToken,
			Title: title,
			Body:  body,
			Data: map[string]string{
				"type":    dataTypeVisitReminder,
				"user_id": m.CustomerID,
			},
		})
		senders = append(senders, m)
	}

	return msgs, senders
}

// resolveBrands bulk-loads the distinct brands referenced by the page. A
// lookup failure degrades to default copy rather than failing the page.
func (s *fanoutService) resolveBrands(ctx context.Context, logger *slog.Logger, metrics []*entity.CustomerMetric) map[string]*entity.Brand {
	ids := make([]string, 0, len(metrics))
	seen := make(map[string]struct{}, len(metrics))
	for _, m := range metrics {
		if m.BrandID == "" {
			continue
		}
		if _, ok := seen[m.BrandID]; ok {
			continue
		}
		seen[m.BrandID] = struct{}{}
		ids = append(ids, m.BrandID)
	}
	if len(ids) == 0 {
		return nil
	}

	brands, err := s.directoryRepo.FindBrandsByIDs(ctx, ids)
	if err != nil {
		logger.Warn("bulk brand lookup failed", slog.Any("error", err))

		return nil
	}

	return brands
}

// resolveStaff bulk-loads the preferred staff referenced by the page.
func (s *fanoutService) resolveStaff(ctx context.Context, logger *slog.Logger, metrics []*entity.CustomerMetric) map[string]*entity.Staff {
	ids := make([]string, 0, len(metrics))
	seen := make(map[string]struct{}, len(metrics))
	for _, m := range metrics {
		if m.PreferredStaffID == "" {
			continue
		}
		if _, ok := seen[m.PreferredStaffID]; ok {
			continue
		}
		seen[m.PreferredStaffID] = struct{}{}
		ids = append(ids, m.PreferredStaffID)
	}
	if len(ids) == 0 {
		return nil
	}

	staff, err := s.directoryRepo.FindStaffByIDs(ctx, ids)
	if err != nil {
		logger.Warn("bulk staff lookup failed", slog.Any("error", err))

		return nil
	}

	return staff
}
