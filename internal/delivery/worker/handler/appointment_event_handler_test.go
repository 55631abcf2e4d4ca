package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rebook/config"
	"rebook/internal/delivery/worker/validator"
	"rebook/internal/domain/entity"
	"rebook/internal/domain/service"
	usecasemocks "rebook/internal/mocks/usecase"
)

// pushEnvelope wraps a payload in a Pub/Sub push envelope the way the push
// subscription delivers it.
func pushEnvelope(t *testing.T, payload interface{}, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	envelope := map[string]interface{}{
		"message": map[string]interface{}{
			"data":       base64.StdEncoding.EncodeToString(data),
			"attributes": attributes,
			"messageId":  "m-1",
		},
		"subscription": "projects/p/subscriptions/s",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return body
}

func postJSON(t *testing.T, path string, body []byte, handle echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handle(e.NewContext(req, rec)))

	return rec
}

func createTestAppointmentEventHandler(t *testing.T) (*AppointmentEventHandler, *usecasemocks.MockLifecycleUsecase) {
	t.Helper()

	lifecycle := usecasemocks.NewMockLifecycleUsecase(t)
	h := NewAppointmentEventHandler(AppointmentEventHandlerParams{
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Lifecycle: lifecycle,
	})

	return h, lifecycle
}

func TestHandleEvent_RoutesChangeEvent(t *testing.T) {
	h, lifecycle := createTestAppointmentEventHandler(t)

	event := &service.AppointmentChangeEvent{
		RequestID:     "req-1",
		AppointmentID: "appt-1",
		After: &entity.Appointment{
			ID:        "appt-1",
			Status:    entity.AppointmentScheduled,
			StartTime: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		},
	}

	var received *service.AppointmentChangeEvent
	lifecycle.EXPECT().
		HandleChange(mock.Anything, mock.AnythingOfType("*service.AppointmentChangeEvent")).
		Run(func(_ context.Context, event *service.AppointmentChangeEvent) { received = event }).
		Return(nil)

	rec := postJSON(t, "/events/appointment", pushEnvelope(t, event, nil), h.HandleEvent)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, "appt-1", received.AppointmentID)
	assert.Equal(t, entity.AppointmentScheduled, received.After.Status)
}

func TestHandleEvent_MalformedEnvelope(t *testing.T) {
	h, lifecycle := createTestAppointmentEventHandler(t)

	rec := postJSON(t, "/events/appointment", []byte(`{"message":{"data":"%%%not-base64%%%"}}`), h.HandleEvent)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	lifecycle.AssertNotCalled(t, "HandleChange", mock.Anything, mock.Anything)
}

func TestHandleEvent_MalformedPayload(t *testing.T) {
	h, lifecycle := createTestAppointmentEventHandler(t)

	envelope := []byte(`{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `"}}`)
	rec := postJSON(t, "/events/appointment", envelope, h.HandleEvent)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	lifecycle.AssertNotCalled(t, "HandleChange", mock.Anything, mock.Anything)
}

func TestHandleEvent_TransientFailureAsksForRedelivery(t *testing.T) {
	h, lifecycle := createTestAppointmentEventHandler(t)

	event := &service.AppointmentChangeEvent{
		AppointmentID: "appt-1",
		After:         &entity.Appointment{ID: "appt-1", Status: entity.AppointmentCompleted},
	}
	lifecycle.EXPECT().
		HandleChange(mock.Anything, mock.AnythingOfType("*service.AppointmentChangeEvent")).
		Return(assert.AnError)

	rec := postJSON(t, "/events/appointment", pushEnvelope(t, event, nil), h.HandleEvent)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
