package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"rebook/config"
	"rebook/internal/domain/service"
)

const reminderTaskPrefix = "reminder-"

// cloudTasksReminderQueue implements ReminderQueue on Google Cloud Tasks.
// Each appointment maps to a named task, so the queue itself enforces the
// one-pending-job-per-appointment invariant.
type cloudTasksReminderQueue struct {
	client    *cloudtasks.Client
	queuePath string
	targetURL string
	logger    *slog.Logger
}

// NewCloudTasksReminderQueue creates a new Cloud Tasks reminder queue
func NewCloudTasksReminderQueue(ctx context.Context, cfg *config.TasksConfig, logger *slog.Logger) (*cloudTasksReminderQueue, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	queuePath := fmt.Sprintf("projects/%s/locations/%s/queues/%s", cfg.ProjectID, cfg.LocationID, cfg.QueueID)

	logger.Info("Cloud Tasks reminder queue initialized",
		slog.String("queue", queuePath),
	)

	return &cloudTasksReminderQueue{
		client:    client,
		queuePath: queuePath,
		targetURL: cfg.TargetBaseURL + "/tasks/reminder",
		logger:    logger,
	}, nil
}

// Schedule creates the named task. A task that already exists under this name
// means a concurrent scheduler won the race; that is treated as success.
func (q *cloudTasksReminderQueue) Schedule(ctx context.Context, appointmentID string, fireAt time.Time) error {
	body, err := json.Marshal(service.ReminderJob{AppointmentID: appointmentID})
	if err != nil {
		return errors.WithStack(err)
	}

	task := &taskspb.Task{
		Name:         q.taskName(appointmentID),
		ScheduleTime: timestamppb.New(fireAt),
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        q.targetURL,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       body,
			},
		},
	}

	_, err = q.client.CreateTask(ctx, &taskspb.CreateTaskRequest{
		Parent: q.queuePath,
		Task:   task,
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			q.logger.Debug("reminder task already scheduled",
				slog.String("appointment_id", appointmentID),
			)

			return nil
		}

		return errors.Wrapf(err, "create reminder task for %s", appointmentID)
	}

	return nil
}

// Cancel deletes the named task. Absence is not an error.
func (q *cloudTasksReminderQueue) Cancel(ctx context.Context, appointmentID string) error {
	err := q.client.DeleteTask(ctx, &taskspb.DeleteTaskRequest{
		Name: q.taskName(appointmentID),
	})
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Wrapf(err, "delete reminder task for %s", appointmentID)
	}

	return nil
}

// Close releases the gRPC client
func (q *cloudTasksReminderQueue) Close() error {
	return errors.WithStack(q.client.Close())
}

func (q *cloudTasksReminderQueue) taskName(appointmentID string) string {
	return fmt.Sprintf("%s/tasks/%s%s", q.queuePath, reminderTaskPrefix, appointmentID)
}
