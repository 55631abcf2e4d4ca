package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rebook/internal/domain/entity"
	"rebook/internal/domain/service"
	repomocks "rebook/internal/mocks/repository"
	servicemocks "rebook/internal/mocks/service"
	usecasemocks "rebook/internal/mocks/usecase"
	"rebook/internal/usecase"
)

type lifecycleServiceFixture struct {
	service       usecase.LifecycleUsecase
	aggregation   *usecasemocks.MockAggregationUsecase
	reminder      *usecasemocks.MockReminderUsecase
	directoryRepo *repomocks.MockDirectoryRepository
	sender        *servicemocks.MockPushSender
}

func createTestLifecycleService(t *testing.T) *lifecycleServiceFixture {
	t.Helper()

	f := &lifecycleServiceFixture{
		aggregation:   usecasemocks.NewMockAggregationUsecase(t),
		reminder:      usecasemocks.NewMockReminderUsecase(t),
		directoryRepo: repomocks.NewMockDirectoryRepository(t),
		sender:        servicemocks.NewMockPushSender(t),
	}
	f.service = NewLifecycleService(
		testLogger(),
		testRetentionConfig(),
		f.aggregation,
		f.reminder,
		f.directoryRepo,
		f.sender,
	)

	return f
}

func changeEvent(before, after *entity.Appointment) *service.AppointmentChangeEvent {
	id := ""
	if after != nil {
		id = after.ID
	}

	return &service.AppointmentChangeEvent{
		RequestID:     "req-1",
		AppointmentID: id,
		Before:        before,
		After:         after,
	}
}

func TestHandleChange_NewScheduledBookingSchedulesReminder(t *testing.T) {
	f := createTestLifecycleService(t)

	start := time.Now().Add(6 * time.Hour)
	after := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentScheduled, StartTime: start}

	f.reminder.EXPECT().ScheduleReminder(mock.Anything, "appt-1", start).Return(nil)

	require.NoError(t, f.service.HandleChange(context.Background(), changeEvent(nil, after)))
}

func TestHandleChange_CompletionRoutesToAggregation(t *testing.T) {
	f := createTestLifecycleService(t)

	before := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentScheduled}
	after := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentCompleted, TotalPrice: 40}

	f.aggregation.EXPECT().RecordCompletion(mock.Anything, after).Return(nil)

	require.NoError(t, f.service.HandleChange(context.Background(), changeEvent(before, after)))
}

func TestHandleChange_NoShowRoutesToAggregation(t *testing.T) {
	f := createTestLifecycleService(t)

	before := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentScheduled}
	after := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentNoShow}

	f.aggregation.EXPECT().RecordNoShow(mock.Anything, after).Return(nil)

	require.NoError(t, f.service.HandleChange(context.Background(), changeEvent(before, after)))
}

func TestHandleChange_UnchangedStatusIsIgnored(t *testing.T) {
	f := createTestLifecycleService(t)

	before := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentScheduled, TotalPrice: 30}
	after := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentScheduled, TotalPrice: 45}

	require.NoError(t, f.service.HandleChange(context.Background(), changeEvent(before, after)))

	f.reminder.AssertNotCalled(t, "ScheduleReminder", mock.Anything, mock.Anything, mock.Anything)
	f.aggregation.AssertNotCalled(t, "RecordCompletion", mock.Anything, mock.Anything)
}

func TestHandleChange_MissingAfterSnapshot(t *testing.T) {
	f := createTestLifecycleService(t)

	event := &service.AppointmentChangeEvent{RequestID: "req-1", AppointmentID: "appt-1"}
	require.NoError(t, f.service.HandleChange(context.Background(), event))
}

func TestHandleChange_FallsBackToEventAppointmentID(t *testing.T) {
	f := createTestLifecycleService(t)

	start := time.Now().Add(6 * time.Hour)
	event := &service.AppointmentChangeEvent{
		RequestID:     "req-1",
		AppointmentID: "appt-1",
		After:         &entity.Appointment{Status: entity.AppointmentScheduled, StartTime: start},
	}

	f.reminder.EXPECT().ScheduleReminder(mock.Anything, "appt-1", start).Return(nil)

	require.NoError(t, f.service.HandleChange(context.Background(), event))
}

func TestHandleChange_CancellationNotifiesStaff(t *testing.T) {
	f := createTestLifecycleService(t)

	before := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentScheduled}
	after := &entity.Appointment{
		ID:        "appt-1",
		BrandID:   "brand-1",
		StaffID:   "staff-1",
		Status:    entity.AppointmentCancelled,
		StartTime: time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC),
	}

	f.directoryRepo.EXPECT().
		FindStaff(mock.Anything, "staff-1").
		Return(&entity.Staff{ID: "staff-1", Name: "Ana", FCMToken: "tok-staff"}, nil)
	f.directoryRepo.EXPECT().
		FindBrand(mock.Anything, "brand-1").
		Return(&entity.Brand{ID: "brand-1", Locale: "hr", Timezone: "Europe/Zagreb"}, nil)

	var sent service.PushMessage
	f.sender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("service.PushMessage")).
		Run(func(_ context.Context, msg service.PushMessage) { sent = msg }).
		Return(nil)

	require.NoError(t, f.service.HandleChange(context.Background(), changeEvent(before, after)))

	assert.Equal(t, "tok-staff", sent.Token)
	assert.Equal(t, "Termin otkazan", sent.Title)
	// 13:00 UTC is 14:00 in Zagreb in March.
	assert.Contains(t, sent.Body, "14:00")
	assert.Equal(t, dataTypeCancellationNotice, sent.Data["type"])
}

func TestHandleChange_CancellationSendFailureIsSwallowed(t *testing.T) {
	f := createTestLifecycleService(t)

	before := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentScheduled}
	after := &entity.Appointment{ID: "appt-1", StaffID: "staff-1", Status: entity.AppointmentCancelled}

	f.directoryRepo.EXPECT().
		FindStaff(mock.Anything, "staff-1").
		Return(&entity.Staff{ID: "staff-1", FCMToken: "tok-staff"}, nil)
	f.sender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("service.PushMessage")).
		Return(assert.AnError)

	require.NoError(t, f.service.HandleChange(context.Background(), changeEvent(before, after)))
}

func TestHandleChange_CancellationWithoutStaffIsTerminal(t *testing.T) {
	f := createTestLifecycleService(t)

	before := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentScheduled}
	after := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentCancelled}

	require.NoError(t, f.service.HandleChange(context.Background(), changeEvent(before, after)))
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandleChange_UnknownStatusIsTerminal(t *testing.T) {
	f := createTestLifecycleService(t)

	before := &entity.Appointment{ID: "appt-1", Status: entity.AppointmentScheduled}
	after := &entity.Appointment{ID: "appt-1", Status: "pending_review"}

	require.NoError(t, f.service.HandleChange(context.Background(), changeEvent(before, after)))
}
