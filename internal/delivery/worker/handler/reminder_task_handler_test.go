package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	usecasemocks "rebook/internal/mocks/usecase"
)

func createTestReminderTaskHandler(t *testing.T) (*ReminderTaskHandler, *usecasemocks.MockReminderUsecase) {
	t.Helper()

	reminder := usecasemocks.NewMockReminderUsecase(t)
	h := NewReminderTaskHandler(ReminderTaskHandlerParams{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Reminder: reminder,
	})

	return h, reminder
}

func TestHandleTask_DispatchesJob(t *testing.T) {
	h, reminder := createTestReminderTaskHandler(t)

	reminder.EXPECT().DispatchReminder(mock.Anything, "appt-1").Return(nil)

	rec := postJSON(t, "/tasks/reminder", []byte(`{"request_id":"req-1","appointment_id":"appt-1"}`), h.HandleTask)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleTask_MissingAppointmentID(t *testing.T) {
	h, reminder := createTestReminderTaskHandler(t)

	rec := postJSON(t, "/tasks/reminder", []byte(`{"request_id":"req-1"}`), h.HandleTask)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	reminder.AssertNotCalled(t, "DispatchReminder", mock.Anything, mock.Anything)
}

func TestHandleTask_TransientFailureAsksForRetry(t *testing.T) {
	h, reminder := createTestReminderTaskHandler(t)

	reminder.EXPECT().DispatchReminder(mock.Anything, "appt-1").Return(assert.AnError)

	rec := postJSON(t, "/tasks/reminder", []byte(`{"appointment_id":"appt-1"}`), h.HandleTask)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
