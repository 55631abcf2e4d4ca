package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"rebook/config"
	"rebook/internal/domain/constants"
	"rebook/internal/domain/service"
	"rebook/internal/usecase"
)

// AppointmentEventHandler receives appointment change events pushed from the
// booking system's Pub/Sub subscription.
type AppointmentEventHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	lifecycle      usecase.LifecycleUsecase
}

// AppointmentEventHandlerParams holds dependencies for the AppointmentEventHandler
type AppointmentEventHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle usecase.LifecycleUsecase
}

// NewAppointmentEventHandler creates a new appointment event handler
func NewAppointmentEventHandler(params AppointmentEventHandlerParams) *AppointmentEventHandler {
	// Verify push auth for the google provider outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.QueueProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &AppointmentEventHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		lifecycle:      params.Lifecycle,
	}
}

// HandleEvent handles one pushed appointment change event. Terminal outcomes
// return 200 so the subscription acks; transient failures return 503 to
// trigger redelivery.
func (h *AppointmentEventHandler) HandleEvent(c echo.Context) error {
	ctx := c.Request().Context()

	pushMsg, data, rejected, err := bindEnvelope(c, h.logger, h.verifyPushAuth)
	if rejected {
		return err
	}

	var event service.AppointmentChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse appointment event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := requestScope(ctx, h.logger, pushMsg.Message.Attributes["request_id"], event.RequestID)

	reqLogger.Info("[Worker] Processing appointment event",
		slog.String("appointment_id", event.AppointmentID),
	)

	if err := h.lifecycle.HandleChange(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process appointment event",
			slog.String("appointment_id", event.AppointmentID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
