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
	"rebook/internal/domain/service"
	"rebook/internal/errors"
	"rebook/internal/usecase"
)

type reminderService struct {
	logger          *slog.Logger
	retention       config.RetentionConfig
	appointmentRepo repository.AppointmentRepository
	metricRepo      repository.CustomerMetricRepository
	directoryRepo   repository.DirectoryRepository
	queue           service.ReminderQueue
	sender          service.PushSender
}

// NewReminderService creates the reminder scheduler/dispatcher.
func NewReminderService(
	logger *slog.Logger,
	cfg *config.Config,
	appointmentRepo repository.AppointmentRepository,
	metricRepo repository.CustomerMetricRepository,
	directoryRepo repository.DirectoryRepository,
	queue service.ReminderQueue,
	sender service.PushSender,
) usecase.ReminderUsecase {
	return &reminderService{
		logger:          logger,
		retention:       cfg.Retention,
		appointmentRepo: appointmentRepo,
		metricRepo:      metricRepo,
		directoryRepo:   directoryRepo,
		queue:           queue,
		sender:          sender,
	}
}

// ScheduleReminder maps the appointment's start time to a single deferred
// job. The appointment id is the job identity, so reschedule is
// cancel-and-replace and at most one pending job exists per appointment.
func (s *reminderService) ScheduleReminder(ctx context.Context, appointmentID string, startTime time.Time) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	fireAt := startTime.Add(-s.retention.ReminderLead)
	if !fireAt.After(time.Now()) {
		logger.Info("reminder window already passed, skipping",
			slog.String("appointment_id", appointmentID),
			slog.Time("start_time", startTime),
		)

		return nil
	}

	if err := s.queue.Cancel(ctx, appointmentID); err != nil {
		return errors.Wrap(err, "cancel pending reminder")
	}

	if err := s.queue.Schedule(ctx, appointmentID, fireAt); err != nil {
		return errors.Wrap(err, "schedule reminder")
	}

	logger.Info("scheduled reminder",
		slog.String("appointment_id", appointmentID),
		slog.Time("fire_at", fireAt),
	)

	return nil
}

// DispatchReminder runs when a deferred job fires. Every decision is
// re-derived from freshly read state; stale or already-handled jobs end as
// terminal no-ops so the queue does not retry them.
func (s *reminderService) DispatchReminder(ctx context.Context, appointmentID string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	appt, err := s.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAppointmentNotFound) {
			logger.Info("reminder target no longer exists",
				slog.String("appointment_id", appointmentID),
			)

			return nil
		}

		return err
	}

	if appt.Status != entity.AppointmentScheduled {
		logger.Info("reminder target no longer scheduled",
			slog.String("appointment_id", appointmentID),
			slog.String("status", string(appt.Status)),
		)

		return nil
	}

	if appt.ReminderSent {
		logger.Info("reminder already sent",
			slog.String("appointment_id", appointmentID),
		)

		return nil
	}

	// Guard against a job that outlived a reschedule: only fire when the
	// current start time is still inside the tolerance window.
	untilStart := time.Until(appt.StartTime)
	if untilStart < s.retention.ReminderWindowMin || untilStart > s.retention.ReminderWindowMax {
		logger.Info("reminder outside freshness window, dropping",
			slog.String("appointment_id", appointmentID),
			slog.Duration("until_start", untilStart),
		)

		return nil
	}

	if appt.CustomerID == "" {
		logger.Warn("reminder target missing customer id",
			slog.String("appointment_id", appointmentID),
		)

		return nil
	}

	metric, err := s.metricRepo.FindByCustomer(ctx, appt.BrandID, appt.CustomerID)
	if err != nil {
		return err
	}
	if metric == nil || metric.FCMToken == "" {
		logger.Info("customer has no push credential, skipping reminder",
			slog.String("appointment_id", appointmentID),
			slog.String("customer_id", appt.CustomerID),
		)

		return nil
	}

	locale, tz, err := s.brandProfile(ctx, appt.BrandID)
	if err != nil {
		return err
	}

	venueName, err := s.locationName(ctx, appt.LocationID)
	if err != nil {
		return err
	}
	staffName, err := s.staffName(ctx, appt.StaffID)
	if err != nil {
		return err
	}

	timeStr := appt.StartTime.In(tz).Format("15:04")
	title, body := appointmentReminderMessage(locale, venueName, staffName, timeStr)

	sendErr := s.sender.Send(ctx, service.PushMessage{
		Token: metric.FCMToken,
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":           dataTypeAppointmentReminder,
			"appointment_id": appointmentID,
			"user_id":        appt.CustomerID,
		},
	})
	if sendErr != nil {
		// A permanently invalid credential is removed before the
		// failure surfaces, so a queue retry lands on the no-credential
		// no-op instead of repeating a doomed send.
		if errors.Is(sendErr, service.ErrTokenInvalid) {
			if err := s.metricRepo.RemoveToken(ctx, metric.Key()); err != nil {
				logger.Warn("failed to remove invalid push token",
					slog.String("customer_id", appt.CustomerID),
					slog.Any("error", err),
				)
			}
		}

		return sendErr
	}

	if err := s.appointmentRepo.MarkReminderSent(ctx, appointmentID); err != nil {
		return err
	}

	logger.Info("sent appointment reminder",
		slog.String("appointment_id", appointmentID),
		slog.String("customer_id", appt.CustomerID),
	)

	return nil
}

func (s *reminderService) brandProfile(ctx context.Context, brandID string) (locale string, tz *time.Location, err error) {
	locale = localeCroatian
	tzName := s.retention.Timezone

	if brandID != "" {
		brand, err := s.directoryRepo.FindBrand(ctx, brandID)
		switch {
		case errors.Is(err, domainerrors.ErrBrandNotFound):
		case err != nil:
			return "", nil, err
		default:
			if brand.Locale != "" {
				locale = brand.Locale
			}
			if brand.Timezone != "" {
				tzName = brand.Timezone
			}
		}
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return "", nil, errors.Wrapf(err, "invalid time zone %q", tzName)
	}

	return locale, loc, nil
}

func (s *reminderService) locationName(ctx context.Context, locationID string) (string, error) {
	if locationID == "" {
		return "", nil
	}

	location, err := s.directoryRepo.FindLocation(ctx, locationID)
	if errors.Is(err, domainerrors.ErrLocationNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return location.Name, nil
}

func (s *reminderService) staffName(ctx context.Context, staffID string) (string, error) {
	if staffID == "" {
		return "", nil
	}

	staff, err := s.directoryRepo.FindStaff(ctx, staffID)
	if errors.Is(err, domainerrors.ErrStaffNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return staff.Name, nil
}
