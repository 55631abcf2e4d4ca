// Package tasks implements the deferred reminder queue.
package tasks

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"rebook/config"
	"rebook/internal/domain/constants"
	"rebook/internal/domain/service"
)

// QueueParams holds dependencies for the ReminderQueue, injected by Fx
type QueueParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewReminderQueue creates a ReminderQueue based on configuration
func NewReminderQueue(params QueueParams) (service.ReminderQueue, error) {
	cfg := params.Config.Tasks
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("tasks configuration is required for the reminder queue")
	}
	if cfg.TargetBaseURL == "" {
		return nil, errors.New("target base URL is required for the reminder queue")
	}

	switch cfg.Provider {
	case constants.QueueProviderLocal:
		logger.Info("Using local in-process reminder queue",
			slog.String("target", cfg.TargetBaseURL),
		)

		queue := NewLocalReminderQueue(cfg, logger)
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing local reminder queue")
				queue.Close()

				return nil
			},
		})

		return queue, nil

	case constants.QueueProviderGoogle:
		if cfg.ProjectID == "" || cfg.LocationID == "" || cfg.QueueID == "" {
			return nil, errors.New("project, location and queue IDs are required for google provider")
		}
		logger.Info("Using Cloud Tasks reminder queue",
			slog.String("project_id", cfg.ProjectID),
			slog.String("queue_id", cfg.QueueID),
		)

		queue, err := NewCloudTasksReminderQueue(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing Cloud Tasks reminder queue")

				return queue.Close()
			},
		})

		return queue, nil

	default:
		return nil, errors.Errorf("unknown tasks provider: %s", cfg.Provider)
	}
}

// Module provides the tasks FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewReminderQueue),
)
