package service

import (
	"context"
	"time"
)

// FanoutJob is one page of the daily retention fan-out chain. The cursor
// carries resume position so each page is independently retryable without
// re-processing earlier pages.
type FanoutJob struct {
	RequestID string    `json:"request_id,omitempty"`
	Cutoff    time.Time `json:"cutoff"`
	Cursor    string    `json:"cursor,omitempty"`
	Page      int       `json:"page"`
}

// FanoutQueue publishes fan-out page jobs for asynchronous processing by the
// worker. Delivery is at-least-once.
type FanoutQueue interface {
	// PublishPage enqueues one page job.
	PublishPage(ctx context.Context, job *FanoutJob) error

	// Close releases any resources held by the queue.
	Close() error
}
