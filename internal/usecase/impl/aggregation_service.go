package impl

import (
	"context"
	"log/slog"
	"time"

	"rebook/config"
	deliverycontext "rebook/internal/delivery/context"
	domainerrors "rebook/internal/domain/errors"
	"rebook/internal/domain/entity"
	"rebook/internal/domain/repository"
	"rebook/internal/errors"
	"rebook/internal/usecase"
)

const (
	dateKeyLayout  = "2006-01-02"
	monthKeyLayout = "2006-01"
)

type aggregationService struct {
	logger          *slog.Logger
	retention       config.RetentionConfig
	txManager       repository.TransactionManager
	appointmentRepo repository.AppointmentRepository
	statsRepo       repository.StatsRepository
	directoryRepo   repository.DirectoryRepository
}

// NewAggregationService creates the stat aggregator.
func NewAggregationService(
	logger *slog.Logger,
	cfg *config.Config,
	txManager repository.TransactionManager,
	appointmentRepo repository.AppointmentRepository,
	statsRepo repository.StatsRepository,
	directoryRepo repository.DirectoryRepository,
) usecase.AggregationUsecase {
	return &aggregationService{
		logger:          logger,
		retention:       cfg.Retention,
		txManager:       txManager,
		appointmentRepo: appointmentRepo,
		statsRepo:       statsRepo,
		directoryRepo:   directoryRepo,
	}
}

// RecordCompletion applies one completion event under a single transaction:
// metric record and both aggregates commit together or not at all.
func (s *aggregationService) RecordCompletion(ctx context.Context, appt *entity.Appointment) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if appt.CustomerID == "" {
		logger.Warn("completion event missing customer id",
			slog.String("appointment_id", appt.ID),
		)

		return nil
	}

	loc, err := s.brandLocation(ctx, appt.BrandID)
	if err != nil {
		return err
	}
	startLocal := appt.StartTime.In(loc)
	dateKey := startLocal.Format(dateKeyLayout)
	monthKey := startLocal.Format(monthKeyLayout)

	key := entity.CustomerKey{BrandID: appt.BrandID, CustomerID: appt.CustomerID}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		metricRepo := repos.NewCustomerMetricRepository()

		metric, err := metricRepo.FindByCustomer(ctx, appt.BrandID, appt.CustomerID)
		if err != nil {
			return err
		}

		// Replay guard: the idempotency token strictly gates
		// re-application. Aborting here commits no writes.
		if metric != nil && metric.LastProcessedAppointmentID == appt.ID {
			logger.Info("completion already processed",
				slog.String("appointment_id", appt.ID),
				slog.String("customer_id", appt.CustomerID),
			)

			return nil
		}

		var prevLifetime float64
		interval := s.retention.DefaultVisitIntervalDays
		if metric != nil {
			prevLifetime = metric.LifetimeValue
			if metric.AverageVisitInterval > 0 {
				interval = metric.AverageVisitInterval
			}
		}
		isNewCustomer := prevLifetime == 0

		if err := metricRepo.ApplyCompletion(ctx, key, entity.MetricCompletion{
			AppointmentID:    appt.ID,
			Amount:           appt.TotalPrice,
			PreferredStaffID: appt.StaffID,
			NextVisitDue:     time.Now().AddDate(0, 0, interval),
		}); err != nil {
			return err
		}

		if appt.LocationID == "" {
			return nil
		}

		statsRepo := repos.NewStatsRepository()

		daily := entity.DailyDelta{
			Revenue:      appt.TotalPrice,
			Appointments: 1,
		}
		if isNewCustomer {
			daily.NewCustomers = 1
		}
		if len(appt.ServiceIDs) > 0 {
			daily.ServiceCount = make(map[string]int64, len(appt.ServiceIDs))
			for _, sid := range appt.ServiceIDs {
				if sid != "" {
					daily.ServiceCount[sid]++
				}
			}
		}
		if err := statsRepo.IncrementDaily(ctx, appt.LocationID, dateKey, daily); err != nil {
			return err
		}

		monthly := entity.MonthlyDelta{Revenue: appt.TotalPrice}
		if appt.StaffID != "" {
			monthly.StaffCount = map[string]int64{appt.StaffID: 1}
		}

		return statsRepo.IncrementMonthly(ctx, appt.LocationID, monthKey, monthly)
	})
	if err != nil {
		return errors.Wrap(err, "completion transaction failed")
	}

	logger.Info("recorded completion",
		slog.String("appointment_id", appt.ID),
		slog.String("customer_id", appt.CustomerID),
		slog.String("location_id", appt.LocationID),
		slog.Float64("total_price", appt.TotalPrice),
	)

	return nil
}

// RecordNoShow increments the daily no-show counter once. The flag check
// re-reads the current appointment rather than trusting the event snapshot,
// so duplicate or reordered deliveries stay safe.
func (s *aggregationService) RecordNoShow(ctx context.Context, appt *entity.Appointment) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if appt.LocationID == "" {
		logger.Warn("no-show event missing location id",
			slog.String("appointment_id", appt.ID),
		)

		return nil
	}

	current, err := s.appointmentRepo.FindByID(ctx, appt.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAppointmentNotFound) {
			logger.Warn("no-show appointment no longer exists",
				slog.String("appointment_id", appt.ID),
			)

			return nil
		}

		return err
	}

	if current.NoShowCounted {
		logger.Info("no-show already counted",
			slog.String("appointment_id", appt.ID),
		)

		return nil
	}

	loc, err := s.brandLocation(ctx, appt.BrandID)
	if err != nil {
		return err
	}
	dateKey := appt.StartTime.In(loc).Format(dateKeyLayout)

	if err := s.statsRepo.RecordNoShow(ctx, appt.LocationID, dateKey, appt.ID); err != nil {
		return err
	}

	logger.Info("recorded no-show",
		slog.String("appointment_id", appt.ID),
		slog.String("location_id", appt.LocationID),
	)

	return nil
}

// brandLocation resolves the brand's time zone, falling back to the
// deployment default when the brand or its zone is missing.
func (s *aggregationService) brandLocation(ctx context.Context, brandID string) (*time.Location, error) {
	tz := s.retention.Timezone

	if brandID != "" {
		brand, err := s.directoryRepo.FindBrand(ctx, brandID)
		switch {
		case errors.Is(err, domainerrors.ErrBrandNotFound):
			// fall through to the default zone
		case err != nil:
			return nil, err
		case brand.Timezone != "":
			tz = brand.Timezone
		}
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid time zone %q", tz)
	}

	return loc, nil
}
