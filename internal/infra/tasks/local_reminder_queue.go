package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"rebook/config"
	"rebook/internal/domain/service"
)

// localReminderQueue implements ReminderQueue with in-process timers that
// POST to the worker's task endpoint, simulating Cloud Tasks for development.
// Pending jobs do not survive a restart.
type localReminderQueue struct {
	mu          sync.Mutex
	timers      map[string]*time.Timer
	targetURL   string
	maxAttempts int
	backoff     time.Duration
	httpClient  *http.Client
	logger      *slog.Logger
	closed      bool
}

// NewLocalReminderQueue creates a new in-process reminder queue for development
func NewLocalReminderQueue(cfg *config.TasksConfig, logger *slog.Logger) *localReminderQueue {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = 10 * time.Second
	}

	return &localReminderQueue{
		timers:      make(map[string]*time.Timer),
		targetURL:   cfg.TargetBaseURL + "/tasks/reminder",
		maxAttempts: maxAttempts,
		backoff:     backoff,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Schedule arms a timer for the appointment. An existing timer under the same
// id is stopped first so the latest schedule wins.
func (q *localReminderQueue) Schedule(_ context.Context, appointmentID string, fireAt time.Time) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return errors.New("reminder queue is closed")
	}

	if timer, ok := q.timers[appointmentID]; ok {
		timer.Stop()
	}

	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	q.timers[appointmentID] = time.AfterFunc(delay, func() {
		q.fire(appointmentID)
	})

	q.logger.Info("[LocalTasks] Scheduled reminder",
		slog.String("appointment_id", appointmentID),
		slog.Time("fire_at", fireAt),
	)

	return nil
}

// Cancel stops and forgets the timer. Absence is not an error.
func (q *localReminderQueue) Cancel(_ context.Context, appointmentID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[appointmentID]; ok {
		timer.Stop()
		delete(q.timers, appointmentID)
	}

	return nil
}

// Close stops all pending timers.
func (q *localReminderQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
}

// fire delivers the job to the worker endpoint with a small retry budget,
// mirroring the queue-level retries Cloud Tasks would apply.
func (q *localReminderQueue) fire(appointmentID string) {
	q.mu.Lock()
	delete(q.timers, appointmentID)
	q.mu.Unlock()

	body, err := json.Marshal(service.ReminderJob{AppointmentID: appointmentID})
	if err != nil {
		q.logger.Error("[LocalTasks] Failed to encode reminder job",
			slog.String("appointment_id", appointmentID),
			slog.Any("error", err),
		)

		return
	}

	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		err := q.deliver(body)
		if err == nil {
			return
		}

		q.logger.Warn("[LocalTasks] Reminder delivery failed",
			slog.String("appointment_id", appointmentID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		if attempt < q.maxAttempts {
			time.Sleep(q.backoff)
		}
	}

	q.logger.Error("[LocalTasks] Reminder dropped after retries",
		slog.String("appointment_id", appointmentID),
	)
}

func (q *localReminderQueue) deliver(body []byte) error {
	req, err := http.NewRequest(http.MethodPost, q.targetURL, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	return nil
}
