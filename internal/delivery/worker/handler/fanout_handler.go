package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"rebook/config"
	"rebook/internal/domain/constants"
	"rebook/internal/domain/service"
	"rebook/internal/usecase"
)

// FanoutHandler receives fan-out page jobs from the Pub/Sub push
// subscription and the daily trigger from Cloud Scheduler.
type FanoutHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	fanout         usecase.FanoutUsecase
}

// FanoutHandlerParams holds dependencies for the FanoutHandler
type FanoutHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Fanout usecase.FanoutUsecase
}

// NewFanoutHandler creates a new fan-out handler
func NewFanoutHandler(params FanoutHandlerParams) *FanoutHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.QueueProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &FanoutHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		fanout:         params.Fanout,
	}
}

// HandlePage handles one pushed fan-out page job.
func (h *FanoutHandler) HandlePage(c echo.Context) error {
	ctx := c.Request().Context()

	pushMsg, data, rejected, err := bindEnvelope(c, h.logger, h.verifyPushAuth)
	if rejected {
		return err
	}

	var job service.FanoutJob
	if err := json.Unmarshal(data, &job); err != nil {
		h.logger.Error("[Worker] Failed to parse fan-out job", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := requestScope(ctx, h.logger, pushMsg.Message.Attributes["request_id"], job.RequestID)
	if job.RequestID == "" {
		job.RequestID = pushMsg.Message.Attributes["request_id"]
	}

	reqLogger.Info("[Worker] Processing fan-out page",
		slog.Int("page", job.Page),
		slog.Time("cutoff", job.Cutoff),
	)

	if err := h.fanout.ProcessPage(ctx, &job); err != nil {
		reqLogger.Error("[Worker] Failed to process fan-out page",
			slog.Int("page", job.Page),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// HandleDailyTrigger starts a fan-out run. Cloud Scheduler calls this once a
// day; the body is empty.
func (h *FanoutHandler) HandleDailyTrigger(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, reqLogger := requestScope(ctx, h.logger, "", "")

	reqLogger.Info("[Worker] Daily fan-out trigger received")

	if err := h.fanout.StartDailyRun(ctx, time.Now()); err != nil {
		reqLogger.Error("[Worker] Failed to start daily fan-out", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
