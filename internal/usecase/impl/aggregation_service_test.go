package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rebook/internal/domain/entity"
	domainerrors "rebook/internal/domain/errors"
	repomocks "rebook/internal/mocks/repository"
	"rebook/internal/usecase"
)

type aggregationServiceFixture struct {
	service         usecase.AggregationUsecase
	txManager       *memTransactionManager
	appointmentRepo *repomocks.MockAppointmentRepository
	statsRepo       *repomocks.MockStatsRepository
	directoryRepo   *repomocks.MockDirectoryRepository
}

func createTestAggregationService(t *testing.T) *aggregationServiceFixture {
	t.Helper()

	f := &aggregationServiceFixture{
		txManager:       newMemTransactionManager(),
		appointmentRepo: repomocks.NewMockAppointmentRepository(t),
		statsRepo:       repomocks.NewMockStatsRepository(t),
		directoryRepo:   repomocks.NewMockDirectoryRepository(t),
	}
	f.service = NewAggregationService(
		testLogger(),
		testRetentionConfig(),
		f.txManager,
		f.appointmentRepo,
		f.statsRepo,
		f.directoryRepo,
	)

	return f
}

func completedAppointment() *entity.Appointment {
	return &entity.Appointment{
		ID:         "appt-1",
		BrandID:    "brand-1",
		CustomerID: "cust-1",
		StaffID:    "staff-1",
		LocationID: "loc-1",
		StartTime:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		TotalPrice: 40,
		ServiceIDs: []string{"svc-cut", "svc-cut", "svc-wash"},
		Status:     entity.AppointmentCompleted,
	}
}

func TestRecordCompletion_NewCustomer(t *testing.T) {
	f := createTestAggregationService(t)

	f.directoryRepo.EXPECT().
		FindBrand(mock.Anything, "brand-1").
		Return(&entity.Brand{ID: "brand-1", Timezone: "Europe/Zagreb"}, nil)

	appt := completedAppointment()
	err := f.service.RecordCompletion(context.Background(), appt)
	require.NoError(t, err)

	require.Equal(t, 1, f.txManager.executions)

	metricRepo := f.txManager.factory.metricRepo
	require.Equal(t, 1, metricRepo.applies)

	metric := metricRepo.records[entity.CustomerKey{BrandID: "brand-1", CustomerID: "cust-1"}]
	require.NotNil(t, metric)
	assert.Equal(t, float64(40), metric.LifetimeValue)
	assert.Equal(t, "appt-1", metric.LastProcessedAppointmentID)
	assert.Equal(t, "staff-1", metric.PreferredStaffID)
	assert.False(t, metric.RemindedThisCycle)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), metric.NextVisitDue, time.Minute)

	statsRepo := f.txManager.factory.statsRepo
	assert.Equal(t, float64(40), statsRepo.dailyRevenue["loc-1/2026-03-14"])
	assert.Equal(t, int64(1), statsRepo.dailyAppointments["loc-1/2026-03-14"])
	assert.Equal(t, int64(1), statsRepo.dailyNewCustomers["loc-1/2026-03-14"])
	assert.Equal(t, map[string]int64{"svc-cut": 2, "svc-wash": 1}, statsRepo.lastDaily.ServiceCount)
	assert.Equal(t, float64(40), statsRepo.monthlyRevenue["loc-1/2026-03"])
	assert.Equal(t, map[string]int64{"staff-1": 1}, statsRepo.lastMonthly.StaffCount)
}

func TestRecordCompletion_ReturningCustomerUsesOwnInterval(t *testing.T) {
	f := createTestAggregationService(t)

	f.directoryRepo.EXPECT().
		FindBrand(mock.Anything, "brand-1").
		Return(&entity.Brand{ID: "brand-1", Timezone: "Europe/Zagreb"}, nil)

	key := entity.CustomerKey{BrandID: "brand-1", CustomerID: "cust-1"}
	f.txManager.factory.metricRepo.records[key] = &entity.CustomerMetric{
		BrandID:                    "brand-1",
		CustomerID:                 "cust-1",
		LifetimeValue:              120,
		AverageVisitInterval:       14,
		LastProcessedAppointmentID: "appt-0",
	}

	err := f.service.RecordCompletion(context.Background(), completedAppointment())
	require.NoError(t, err)

	metric := f.txManager.factory.metricRepo.records[key]
	assert.Equal(t, float64(160), metric.LifetimeValue)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), metric.NextVisitDue, time.Minute)

	statsRepo := f.txManager.factory.statsRepo
	assert.Equal(t, int64(0), statsRepo.dailyNewCustomers["loc-1/2026-03-14"])
}

func TestRecordCompletion_ReplayIsNoOp(t *testing.T) {
	f := createTestAggregationService(t)

	f.directoryRepo.EXPECT().
		FindBrand(mock.Anything, "brand-1").
		Return(&entity.Brand{ID: "brand-1", Timezone: "Europe/Zagreb"}, nil).
		Twice()

	appt := completedAppointment()
	require.NoError(t, f.service.RecordCompletion(context.Background(), appt))
	require.NoError(t, f.service.RecordCompletion(context.Background(), appt))

	assert.Equal(t, 2, f.txManager.executions)
	assert.Equal(t, 1, f.txManager.factory.metricRepo.applies)

	key := entity.CustomerKey{BrandID: "brand-1", CustomerID: "cust-1"}
	assert.Equal(t, float64(40), f.txManager.factory.metricRepo.records[key].LifetimeValue)

	statsRepo := f.txManager.factory.statsRepo
	assert.Equal(t, float64(40), statsRepo.dailyRevenue["loc-1/2026-03-14"])
	assert.Equal(t, int64(1), statsRepo.dailyAppointments["loc-1/2026-03-14"])
}

func TestRecordCompletion_AbortLeavesNoWrites(t *testing.T) {
	f := createTestAggregationService(t)

	f.directoryRepo.EXPECT().
		FindBrand(mock.Anything, "brand-1").
		Return(&entity.Brand{ID: "brand-1", Timezone: "Europe/Zagreb"}, nil).
		Twice()

	f.txManager.factory.statsRepo.failWith = assert.AnError

	appt := completedAppointment()
	err := f.service.RecordCompletion(context.Background(), appt)
	require.Error(t, err)

	assert.Equal(t, 0, f.txManager.factory.metricRepo.applies)
	assert.Empty(t, f.txManager.factory.metricRepo.records)
	assert.Empty(t, f.txManager.factory.statsRepo.dailyRevenue)

	// A redelivery after the abort applies the full effect exactly once.
	f.txManager.factory.statsRepo.failWith = nil
	require.NoError(t, f.service.RecordCompletion(context.Background(), appt))

	assert.Equal(t, 1, f.txManager.factory.metricRepo.applies)
	assert.Equal(t, float64(40), f.txManager.factory.statsRepo.dailyRevenue["loc-1/2026-03-14"])
}

func TestRecordCompletion_MissingCustomerID(t *testing.T) {
	f := createTestAggregationService(t)

	appt := completedAppointment()
	appt.CustomerID = ""

	err := f.service.RecordCompletion(context.Background(), appt)
	require.NoError(t, err)
	assert.Equal(t, 0, f.txManager.executions)
}

func TestRecordCompletion_NoLocationSkipsStats(t *testing.T) {
	f := createTestAggregationService(t)

	f.directoryRepo.EXPECT().
		FindBrand(mock.Anything, "brand-1").
		Return(&entity.Brand{ID: "brand-1", Timezone: "Europe/Zagreb"}, nil)

	appt := completedAppointment()
	appt.LocationID = ""

	err := f.service.RecordCompletion(context.Background(), appt)
	require.NoError(t, err)

	assert.Equal(t, 1, f.txManager.factory.metricRepo.applies)
	assert.Empty(t, f.txManager.factory.statsRepo.dailyRevenue)
	assert.Empty(t, f.txManager.factory.statsRepo.monthlyRevenue)
}

func TestRecordCompletion_UnknownBrandFallsBackToDefaultZone(t *testing.T) {
	f := createTestAggregationService(t)

	f.directoryRepo.EXPECT().
		FindBrand(mock.Anything, "brand-1").
		Return(nil, domainerrors.ErrBrandNotFound)

	err := f.service.RecordCompletion(context.Background(), completedAppointment())
	require.NoError(t, err)

	// 09:30 UTC on 2026-03-14 is still the 14th in Europe/Zagreb.
	assert.Equal(t, float64(40), f.txManager.factory.statsRepo.dailyRevenue["loc-1/2026-03-14"])
}

func TestRecordNoShow_Success(t *testing.T) {
	f := createTestAggregationService(t)

	appt := completedAppointment()
	appt.Status = entity.AppointmentNoShow

	f.appointmentRepo.EXPECT().
		FindByID(mock.Anything, "appt-1").
		Return(&entity.Appointment{ID: "appt-1", Status: entity.AppointmentNoShow}, nil)
	f.directoryRepo.EXPECT().
		FindBrand(mock.Anything, "brand-1").
		Return(&entity.Brand{ID: "brand-1", Timezone: "Europe/Zagreb"}, nil)
	f.statsRepo.EXPECT().
		RecordNoShow(mock.Anything, "loc-1", "2026-03-14", "appt-1").
		Return(nil)

	require.NoError(t, f.service.RecordNoShow(context.Background(), appt))
}

func TestRecordNoShow_AlreadyCounted(t *testing.T) {
	f := createTestAggregationService(t)

	appt := completedAppointment()
	appt.Status = entity.AppointmentNoShow

	f.appointmentRepo.EXPECT().
		FindByID(mock.Anything, "appt-1").
		Return(&entity.Appointment{ID: "appt-1", NoShowCounted: true}, nil)

	require.NoError(t, f.service.RecordNoShow(context.Background(), appt))
	f.statsRepo.AssertNotCalled(t, "RecordNoShow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordNoShow_AppointmentGone(t *testing.T) {
	f := createTestAggregationService(t)

	appt := completedAppointment()
	appt.Status = entity.AppointmentNoShow

	f.appointmentRepo.EXPECT().
		FindByID(mock.Anything, "appt-1").
		Return(nil, domainerrors.ErrAppointmentNotFound)

	require.NoError(t, f.service.RecordNoShow(context.Background(), appt))
}

func TestRecordNoShow_MissingLocation(t *testing.T) {
	f := createTestAggregationService(t)

	appt := completedAppointment()
	appt.LocationID = ""

	require.NoError(t, f.service.RecordNoShow(context.Background(), appt))
	f.appointmentRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
