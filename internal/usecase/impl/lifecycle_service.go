package impl

import (
	"context"
	"log/slog"
	"strings"
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

type lifecycleService struct {
	logger        *slog.Logger
	retention     config.RetentionConfig
	aggregation   usecase.AggregationUsecase
	reminder      usecase.ReminderUsecase
	directoryRepo repository.DirectoryRepository
	sender        service.PushSender
}

// NewLifecycleService creates the event router that classifies appointment
// state transitions.
func NewLifecycleService(
	logger *slog.Logger,
	cfg *config.Config,
	aggregation usecase.AggregationUsecase,
	reminder usecase.ReminderUsecase,
	directoryRepo repository.DirectoryRepository,
	sender service.PushSender,
) usecase.LifecycleUsecase {
	return &lifecycleService{
		logger:        logger,
		retention:     cfg.Retention,
		aggregation:   aggregation,
		reminder:      reminder,
		directoryRepo: directoryRepo,
		sender:        sender,
	}
}

// HandleChange routes a single before/after snapshot pair. Only a changed
// status triggers work; field-only edits on an unchanged status are ignored.
func (s *lifecycleService) HandleChange(ctx context.Context, event *service.AppointmentChangeEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if event.After == nil {
		logger.Warn("change event missing after snapshot",
			slog.String("appointment_id", event.AppointmentID),
		)

		return nil
	}

	after := event.After
	if after.ID == "" {
		after.ID = event.AppointmentID
	}

	var beforeStatus entity.AppointmentStatus
	if event.Before != nil {
		beforeStatus = event.Before.Status
	}
	if beforeStatus == after.Status {
		return nil
	}

	logger.Info("routing appointment transition",
		slog.String("appointment_id", after.ID),
		slog.String("from", string(beforeStatus)),
		slog.String("to", string(after.Status)),
	)

	switch {
	case after.Status == entity.AppointmentScheduled:
		return s.reminder.ScheduleReminder(ctx, after.ID, after.StartTime)

	case after.Status == entity.AppointmentCompleted:
		return s.aggregation.RecordCompletion(ctx, after)

	case after.Status == entity.AppointmentNoShow:
		return s.aggregation.RecordNoShow(ctx, after)

	case strings.Contains(string(after.Status), "cancelled"):
		// Pending reminder jobs are left in place; the dispatcher
		// re-reads state when they fire and drops stale ones.
		s.notifyStaffCancellation(ctx, logger, after)

		return nil

	default:
		logger.Info("unhandled appointment status",
			slog.String("appointment_id", after.ID),
			slog.String("status", string(after.Status)),
		)

		return nil
	}
}

// notifyStaffCancellation sends a best-effort notice to the assigned staff
// member. It never fails the event; a lost notice is acceptable, a stuck
// retry loop is not.
func (s *lifecycleService) notifyStaffCancellation(ctx context.Context, logger *slog.Logger, appt *entity.Appointment) {
	if appt.StaffID == "" {
		return
	}

	staff, err := s.directoryRepo.FindStaff(ctx, appt.StaffID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrStaffNotFound) {
			logger.Warn("staff lookup failed for cancellation notice",
				slog.String("staff_id", appt.StaffID),
				slog.Any("error", err),
			)
		}

		return
	}
	if staff.FCMToken == "" {
		return
	}

	locale := localeCroatian
	tzName := s.retention.Timezone
	if appt.BrandID != "" {
		brand, err := s.directoryRepo.FindBrand(ctx, appt.BrandID)
		if err == nil {
			if brand.Locale != "" {
				locale = brand.Locale
			}
			if brand.Timezone != "" {
				tzName = brand.Timezone
			}
		}
	}

	timeStr := appt.StartTime.Format("15:04")
	if loc, err := time.LoadLocation(tzName); err == nil {
		timeStr = appt.StartTime.In(loc).Format("15:04")
	}

	title, body := cancellationNoticeMessage(locale, timeStr)
	if err := s.sender.Send(ctx, service.PushMessage{
		Token: staff.FCMToken,
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":           dataTypeCancellationNotice,
			"appointment_id": appt.ID,
		},
	}); err != nil {
		logger.Warn("cancellation notice send failed",
			slog.String("staff_id", appt.StaffID),
			slog.Any("error", err),
		)
	}
}
