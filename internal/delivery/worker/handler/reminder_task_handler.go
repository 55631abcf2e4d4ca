package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"rebook/internal/domain/service"
	"rebook/internal/usecase"
)

// ReminderTaskHandler receives deferred reminder jobs when they fire. The
// queue (Cloud Tasks or the local timer queue) POSTs the job body directly,
// without a Pub/Sub envelope.
type ReminderTaskHandler struct {
	logger   *slog.Logger
	reminder usecase.ReminderUsecase
}

// ReminderTaskHandlerParams holds dependencies for the ReminderTaskHandler
type ReminderTaskHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	Reminder usecase.ReminderUsecase
}

// NewReminderTaskHandler creates a new reminder task handler
func NewReminderTaskHandler(params ReminderTaskHandlerParams) *ReminderTaskHandler {
	return &ReminderTaskHandler{
		logger:   params.Logger,
		reminder: params.Reminder,
	}
}

// HandleTask dispatches one fired reminder job. Stale jobs resolve as
// terminal no-ops inside the use case and ack with 200; only transient
// failures return 503 for a queue retry.
func (h *ReminderTaskHandler) HandleTask(c echo.Context) error {
	ctx := c.Request().Context()

	var job service.ReminderJob
	if err := c.Bind(&job); err != nil {
		h.logger.Error("[Worker] Failed to parse reminder job", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if err := c.Validate(&job); err != nil {
		h.logger.Warn("[Worker] Invalid reminder job", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := requestScope(ctx, h.logger, "", job.RequestID)

	reqLogger.Info("[Worker] Processing reminder job",
		slog.String("appointment_id", job.AppointmentID),
	)

	if err := h.reminder.DispatchReminder(ctx, job.AppointmentID); err != nil {
		reqLogger.Error("[Worker] Failed to dispatch reminder",
			slog.String("appointment_id", job.AppointmentID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
