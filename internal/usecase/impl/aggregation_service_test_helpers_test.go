package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"rebook/config"
	"rebook/internal/domain/entity"
	"rebook/internal/domain/repository"
)

// Stateful in-memory fakes for the completion transaction. Mocks verify call
// shapes; these verify end-state properties like replay safety and
// all-or-nothing commits.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRetentionConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Retention = config.RetentionConfig{
		DefaultVisitIntervalDays: 30,
		Timezone:                 "Europe/Zagreb",
		PageSize:                 500,
		ReminderLead:             2 * time.Hour,
		ReminderWindowMin:        90 * time.Minute,
		ReminderWindowMax:        150 * time.Minute,
	}

	return cfg
}

// memMetricRepo is an in-memory CustomerMetricRepository covering the methods
// the completion transaction touches.
type memMetricRepo struct {
	records map[entity.CustomerKey]*entity.CustomerMetric
	applies int
}

func newMemMetricRepo() *memMetricRepo {
	return &memMetricRepo{records: make(map[entity.CustomerKey]*entity.CustomerMetric)}
}

func (r *memMetricRepo) FindByCustomer(_ context.Context, brandID, customerID string) (*entity.CustomerMetric, error) {
	metric, ok := r.records[entity.CustomerKey{BrandID: brandID, CustomerID: customerID}]
	if !ok {
		return nil, nil
	}
	clone := *metric

	return &clone, nil
}

func (r *memMetricRepo) ApplyCompletion(_ context.Context, key entity.CustomerKey, update entity.MetricCompletion) error {
	r.applies++

	metric, ok := r.records[key]
	if !ok {
		metric = &entity.CustomerMetric{BrandID: key.BrandID, CustomerID: key.CustomerID}
		r.records[key] = metric
	}

	metric.LifetimeValue += update.Amount
	metric.LastBookingDate = time.Now()
	metric.NextVisitDue = update.NextVisitDue
	metric.RemindedThisCycle = false
	metric.LastProcessedAppointmentID = update.AppointmentID
	if update.PreferredStaffID != "" {
		metric.PreferredStaffID = update.PreferredStaffID
	}

	return nil
}

func (r *memMetricRepo) snapshot() map[entity.CustomerKey]entity.CustomerMetric {
	snap := make(map[entity.CustomerKey]entity.CustomerMetric, len(r.records))
	for key, metric := range r.records {
		snap[key] = *metric
	}

	return snap
}

func (r *memMetricRepo) restore(snap map[entity.CustomerKey]entity.CustomerMetric) {
	r.records = make(map[entity.CustomerKey]*entity.CustomerMetric, len(snap))
	for key, metric := range snap {
		clone := metric
		r.records[key] = &clone
	}
}

func (r *memMetricRepo) ListDueForReminder(context.Context, time.Time, int, string) ([]*entity.CustomerMetric, string, error) {
	panic("not used in completion transaction")
}

func (r *memMetricRepo) MarkRemindedThisCycle(context.Context, []entity.CustomerKey) error {
	panic("not used in completion transaction")
}

func (r *memMetricRepo) RemoveToken(context.Context, entity.CustomerKey) error {
	panic("not used in completion transaction")
}

// memStatsRepo records increments so tests can assert aggregate deltas. A
// non-nil failWith makes every increment fail, simulating a mid-transaction
// error.
type memStatsRepo struct {
	failWith error

	dailyRevenue      map[string]float64
	dailyAppointments map[string]int64
	dailyNewCustomers map[string]int64
	monthlyRevenue    map[string]float64

	lastDaily   entity.DailyDelta
	lastMonthly entity.MonthlyDelta
}

func newMemStatsRepo() *memStatsRepo {
	return &memStatsRepo{
		dailyRevenue:      make(map[string]float64),
		dailyAppointments: make(map[string]int64),
		dailyNewCustomers: make(map[string]int64),
		monthlyRevenue:    make(map[string]float64),
	}
}

func (r *memStatsRepo) IncrementDaily(_ context.Context, locationID, dateKey string, delta entity.DailyDelta) error {
	if r.failWith != nil {
		return r.failWith
	}

	key := locationID + "/" + dateKey
	r.dailyRevenue[key] += delta.Revenue
	r.dailyAppointments[key] += delta.Appointments
	r.dailyNewCustomers[key] += delta.NewCustomers
	r.lastDaily = delta

	return nil
}

func (r *memStatsRepo) IncrementMonthly(_ context.Context, locationID, monthKey string, delta entity.MonthlyDelta) error {
	if r.failWith != nil {
		return r.failWith
	}

	r.monthlyRevenue[locationID+"/"+monthKey] += delta.Revenue
	r.lastMonthly = delta

	return nil
}

func (r *memStatsRepo) RecordNoShow(context.Context, string, string, string) error {
	panic("not used in completion transaction")
}

func (r *memStatsRepo) snapshot() *memStatsRepo {
	snap := newMemStatsRepo()
	for k, v := range r.dailyRevenue {
		snap.dailyRevenue[k] = v
	}
	for k, v := range r.dailyAppointments {
		snap.dailyAppointments[k] = v
	}
	for k, v := range r.dailyNewCustomers {
		snap.dailyNewCustomers[k] = v
	}
	for k, v := range r.monthlyRevenue {
		snap.monthlyRevenue[k] = v
	}
	snap.lastDaily = r.lastDaily
	snap.lastMonthly = r.lastMonthly

	return snap
}

func (r *memStatsRepo) restore(snap *memStatsRepo) {
	r.dailyRevenue = snap.dailyRevenue
	r.dailyAppointments = snap.dailyAppointments
	r.dailyNewCustomers = snap.dailyNewCustomers
	r.monthlyRevenue = snap.monthlyRevenue
	r.lastDaily = snap.lastDaily
	r.lastMonthly = snap.lastMonthly
}

// memRepositoryFactory hands out the shared fakes.
type memRepositoryFactory struct {
	metricRepo *memMetricRepo
	statsRepo  *memStatsRepo
}

func (f *memRepositoryFactory) NewCustomerMetricRepository() repository.CustomerMetricRepository {
	return f.metricRepo
}

func (f *memRepositoryFactory) NewStatsRepository() repository.StatsRepository {
	return f.statsRepo
}

// memTransactionManager runs the function against the in-memory fakes and
// rolls their state back when the function fails, matching the buffered-write
// semantics of a real transaction.
type memTransactionManager struct {
	factory    *memRepositoryFactory
	executions int
}

func newMemTransactionManager() *memTransactionManager {
	return &memTransactionManager{
		factory: &memRepositoryFactory{
			metricRepo: newMemMetricRepo(),
			statsRepo:  newMemStatsRepo(),
		},
	}
}

func (tm *memTransactionManager) Execute(_ context.Context, fn func(repos repository.RepositoryFactory) error) error {
	tm.executions++

	metricSnap := tm.factory.metricRepo.snapshot()
	applies := tm.factory.metricRepo.applies
	statsSnap := tm.factory.statsRepo.snapshot()

	if err := fn(tm.factory); err != nil {
		tm.factory.metricRepo.restore(metricSnap)
		tm.factory.metricRepo.applies = applies
		tm.factory.statsRepo.restore(statsSnap)

		return err
	}

	return nil
}
