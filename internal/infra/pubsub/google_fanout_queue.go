package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"

	"rebook/internal/domain/service"
)

// googleFanoutQueue implements FanoutQueue using Google Cloud Pub/Sub
type googleFanoutQueue struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGoogleFanoutQueue creates a new Google Pub/Sub fan-out queue
func NewGoogleFanoutQueue(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.FanoutQueue, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub fan-out queue initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googleFanoutQueue{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishPage publishes one page job to Google Pub/Sub
func (q *googleFanoutQueue) PublishPage(ctx context.Context, job *service.FanoutJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{
		"page": strconv.Itoa(job.Page),
	}
	if job.RequestID != "" {
		attributes["request_id"] = job.RequestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	q.logger.Info("[GooglePubSub] Publishing fan-out page",
		slog.String("request_id", job.RequestID),
		slog.Int("page", job.Page),
	)

	result := q.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	q.logger.Info("[GooglePubSub] Fan-out page published",
		slog.String("request_id", job.RequestID),
		slog.Int("page", job.Page),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (q *googleFanoutQueue) Close() error {
	if q.publisher != nil {
		q.publisher.Stop()
	}
	if q.client != nil {
		return errors.WithStack(q.client.Close())
	}

	return nil
}
