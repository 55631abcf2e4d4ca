package usecase

import (
	"context"
	"time"

	"rebook/internal/domain/service"
)

// FanoutUsecase runs the daily retention fan-out as a self-continuing chain
// of fixed-size pages.
type FanoutUsecase interface {
	// StartDailyRun computes the cutoff (end of the current local day) and
	// publishes the first page job.
	StartDailyRun(ctx context.Context, now time.Time) error

	// ProcessPage handles one page: query due customers from the job's
	// cursor, send the page in one bulk call, flag every attempted record
	// as reminded this cycle, and publish a continuation when the page was
	// full.
	ProcessPage(ctx context.Context, job *service.FanoutJob) error
}
