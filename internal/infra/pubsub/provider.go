package pubsub

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"rebook/config"
	"rebook/internal/domain/constants"
	"rebook/internal/domain/service"
)

// QueueParams holds dependencies for the FanoutQueue, injected by Fx
type QueueParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFanoutQueue creates a FanoutQueue based on configuration
func NewFanoutQueue(params QueueParams) (service.FanoutQueue, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("pubsub configuration is required for the fan-out chain")
	}

	var queue service.FanoutQueue
	var err error

	switch cfg.Provider {
	case constants.QueueProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for fan-out pages",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		queue = NewLocalHTTPFanoutQueue(cfg.LocalEndpoint, logger)

	case constants.QueueProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for fan-out pages",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		queue, err = NewGoogleFanoutQueue(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the queue on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing FanoutQueue")

			return queue.Close()
		},
	})

	return queue, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFanoutQueue),
)
