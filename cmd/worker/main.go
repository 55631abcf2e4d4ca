package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"rebook/config"
	"rebook/internal/delivery"
	"rebook/internal/delivery/worker"
	"rebook/internal/delivery/worker/handler"
	"rebook/internal/infra/firebase"
	logs "rebook/internal/infra/log"
	"rebook/internal/infra/notification"
	"rebook/internal/infra/persistence/firestore"
	"rebook/internal/infra/pubsub"
	"rebook/internal/infra/tasks"
	"rebook/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.New,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewAppointmentRepository,
			firestore.NewCustomerMetricRepository,
			firestore.NewStatsRepository,
			firestore.NewDirectoryRepository,
			firestore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseSender,
			tasks.NewReminderQueue,
			pubsub.NewFanoutQueue,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAggregationService,
			impl.NewReminderService,
			impl.NewFanoutService,
			impl.NewLifecycleService,
			impl.NewBillingService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAppointmentEventHandler,
			handler.NewReminderTaskHandler,
			handler.NewFanoutHandler,
			handler.NewBillingWebhookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
