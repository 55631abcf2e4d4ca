package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"rebook/internal/domain/service"
)

// localHTTPFanoutQueue implements FanoutQueue by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPFanoutQueue struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPFanoutQueue creates a new local HTTP fan-out queue for development
func NewLocalHTTPFanoutQueue(endpoint string, logger *slog.Logger) service.FanoutQueue {
	return &localHTTPFanoutQueue{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishPage publishes a page job by sending HTTP POST to the local endpoint
func (q *localHTTPFanoutQueue) PublishPage(ctx context.Context, job *service.FanoutJob) error {
	jobData, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	// Wrap in a Pub/Sub push envelope so the worker handler decodes local
	// and production deliveries the same way
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/fanout-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(jobData)
	pushMsg.Message.MessageID = fmt.Sprintf("%s-%d", job.RequestID, job.Page)
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	attributes := map[string]string{
		"page": strconv.Itoa(job.Page),
	}
	if job.RequestID != "" {
		attributes["request_id"] = job.RequestID
	}
	pushMsg.Message.Attributes = attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	q.logger.Info("[LocalPubSub] Publishing fan-out page",
		slog.String("endpoint", q.endpoint),
		slog.String("request_id", job.RequestID),
		slog.Int("page", job.Page),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if job.RequestID != "" {
		req.Header.Set("X-Request-Id", job.RequestID)
	}

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	q.logger.Info("[LocalPubSub] Fan-out page published",
		slog.String("request_id", job.RequestID),
		slog.Int("page", job.Page),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (q *localHTTPFanoutQueue) Close() error {
	return nil
}
