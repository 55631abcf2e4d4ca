package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rebook/config"
	"rebook/internal/domain/service"
	usecasemocks "rebook/internal/mocks/usecase"
)

func createTestFanoutHandler(t *testing.T) (*FanoutHandler, *usecasemocks.MockFanoutUsecase) {
	t.Helper()

	fanout := usecasemocks.NewMockFanoutUsecase(t)
	h := NewFanoutHandler(FanoutHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Fanout: fanout,
	})

	return h, fanout
}

func TestHandlePage_ProcessesJob(t *testing.T) {
	h, fanout := createTestFanoutHandler(t)

	job := &service.FanoutJob{
		RequestID: "run-1",
		Cutoff:    time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC),
		Cursor:    "cursor-1",
		Page:      2,
	}

	var received *service.FanoutJob
	fanout.EXPECT().
		ProcessPage(mock.Anything, mock.AnythingOfType("*service.FanoutJob")).
		Run(func(_ context.Context, job *service.FanoutJob) { received = job }).
		Return(nil)

	rec := postJSON(t, "/tasks/fanout", pushEnvelope(t, job, nil), h.HandlePage)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, "run-1", received.RequestID)
	assert.Equal(t, "cursor-1", received.Cursor)
	assert.Equal(t, 2, received.Page)
	assert.True(t, received.Cutoff.Equal(job.Cutoff))
}

func TestHandlePage_RequestIDFromAttributes(t *testing.T) {
	h, fanout := createTestFanoutHandler(t)

	job := &service.FanoutJob{Cutoff: time.Now().UTC(), Page: 0}

	var received *service.FanoutJob
	fanout.EXPECT().
		ProcessPage(mock.Anything, mock.AnythingOfType("*service.FanoutJob")).
		Run(func(_ context.Context, job *service.FanoutJob) { received = job }).
		Return(nil)

	envelope := pushEnvelope(t, job, map[string]string{"request_id": "run-from-attr"})
	rec := postJSON(t, "/tasks/fanout", envelope, h.HandlePage)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, "run-from-attr", received.RequestID)
}

func TestHandlePage_TransientFailureAsksForRedelivery(t *testing.T) {
	h, fanout := createTestFanoutHandler(t)

	fanout.EXPECT().
		ProcessPage(mock.Anything, mock.AnythingOfType("*service.FanoutJob")).
		Return(assert.AnError)

	rec := postJSON(t, "/tasks/fanout", pushEnvelope(t, &service.FanoutJob{RequestID: "run-1"}, nil), h.HandlePage)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleDailyTrigger_StartsRun(t *testing.T) {
	h, fanout := createTestFanoutHandler(t)

	fanout.EXPECT().
		StartDailyRun(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil)

	rec := postJSON(t, "/triggers/daily-fanout", nil, h.HandleDailyTrigger)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleDailyTrigger_TransientFailure(t *testing.T) {
	h, fanout := createTestFanoutHandler(t)

	fanout.EXPECT().
		StartDailyRun(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(assert.AnError)

	rec := postJSON(t, "/triggers/daily-fanout", nil, h.HandleDailyTrigger)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
