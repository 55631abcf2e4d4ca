package impl

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rebook/internal/domain/entity"
	"rebook/internal/domain/service"
	repomocks "rebook/internal/mocks/repository"
	servicemocks "rebook/internal/mocks/service"
	"rebook/internal/usecase"
)

type fanoutServiceFixture struct {
	service       usecase.FanoutUsecase
	metricRepo    *repomocks.MockCustomerMetricRepository
	directoryRepo *repomocks.MockDirectoryRepository
	queue         *servicemocks.MockFanoutQueue
	sender        *servicemocks.MockPushSender
}

func createTestFanoutService(t *testing.T, pageSize int) *fanoutServiceFixture {
	t.Helper()

	cfg := testRetentionConfig()
	cfg.Retention.PageSize = pageSize

	f := &fanoutServiceFixture{
		metricRepo:    repomocks.NewMockCustomerMetricRepository(t),
		directoryRepo: repomocks.NewMockDirectoryRepository(t),
		queue:         servicemocks.NewMockFanoutQueue(t),
		sender:        servicemocks.NewMockPushSender(t),
	}
	f.service = NewFanoutService(testLogger(), cfg, f.metricRepo, f.directoryRepo, f.queue, f.sender)

	return f
}

func dueMetrics(n int) []*entity.CustomerMetric {
	metrics := make([]*entity.CustomerMetric, 0, n)
	for i := 0; i < n; i++ {
		metrics = append(metrics, &entity.CustomerMetric{
			BrandID:          "brand-1",
			CustomerID:       fmt.Sprintf("cust-%d", i),
			FullName:         fmt.Sprintf("Customer %d", i),
			FCMToken:         fmt.Sprintf("tok-%d", i),
			PreferredStaffID: "staff-1",
		})
	}

	return metrics
}

func okResults(msgs []service.PushMessage) []service.SendResult {
	results := make([]service.SendResult, 0, len(msgs))
	for _, msg := range msgs {
		results = append(results, service.SendResult{Token: msg.Token})
	}

	return results
}

func pageDirectoryLookups(f *fanoutServiceFixture) {
	f.directoryRepo.EXPECT().
		FindBrandsByIDs(mock.Anything, []string{"brand-1"}).
		Return(map[string]*entity.Brand{"brand-1": {ID: "brand-1", Locale: "hr"}}, nil)
	f.directoryRepo.EXPECT().
		FindStaffByIDs(mock.Anything, []string{"staff-1"}).
		Return(map[string]*entity.Staff{"staff-1": {ID: "staff-1", Name: "Ana"}}, nil)
}

func TestStartDailyRun_PublishesFirstPage(t *testing.T) {
	f := createTestFanoutService(t, 500)

	now := time.Date(2026, 3, 14, 4, 0, 0, 0, time.UTC)

	var published *service.FanoutJob
	f.queue.EXPECT().
		PublishPage(mock.Anything, mock.AnythingOfType("*service.FanoutJob")).
		Run(func(_ context.Context, job *service.FanoutJob) { published = job }).
		Return(nil)

	require.NoError(t, f.service.StartDailyRun(context.Background(), now))

	require.NotNil(t, published)
	assert.NotEmpty(t, published.RequestID)
	assert.Equal(t, 0, published.Page)
	assert.Empty(t, published.Cursor)

	loc, err := time.LoadLocation("Europe/Zagreb")
	require.NoError(t, err)
	assert.True(t, published.Cutoff.Equal(time.Date(2026, 3, 14, 23, 59, 59, 999*int(time.Millisecond), loc)))

	// A record due in the last second of the day is still inside the run.
	lastSecondDue := time.Date(2026, 3, 14, 23, 59, 59, 500*int(time.Millisecond), loc)
	assert.False(t, published.Cutoff.Before(lastSecondDue))
}

func TestProcessPage_FullPageContinuesChain(t *testing.T) {
	f := createTestFanoutService(t, 2)

	cutoff := time.Now()
	metrics := dueMetrics(2)

	f.metricRepo.EXPECT().
		ListDueForReminder(mock.Anything, cutoff, 2, "").
		Return(metrics, "cursor-1", nil)
	pageDirectoryLookups(f)
	f.sender.EXPECT().
		SendBulk(mock.Anything, mock.AnythingOfType("[]service.PushMessage")).
		RunAndReturn(func(_ context.Context, msgs []service.PushMessage) ([]service.SendResult, error) {
			return okResults(msgs), nil
		})
	f.metricRepo.EXPECT().
		MarkRemindedThisCycle(mock.Anything, []entity.CustomerKey{
			{BrandID: "brand-1", CustomerID: "cust-0"},
			{BrandID: "brand-1", CustomerID: "cust-1"},
		}).
		Return(nil)

	var next *service.FanoutJob
	f.queue.EXPECT().
		PublishPage(mock.Anything, mock.AnythingOfType("*service.FanoutJob")).
		Run(func(_ context.Context, job *service.FanoutJob) { next = job }).
		Return(nil)

	job := &service.FanoutJob{RequestID: "run-1", Cutoff: cutoff, Page: 0}
	require.NoError(t, f.service.ProcessPage(context.Background(), job))

	require.NotNil(t, next)
	assert.Equal(t, "run-1", next.RequestID)
	assert.Equal(t, cutoff, next.Cutoff)
	assert.Equal(t, "cursor-1", next.Cursor)
	assert.Equal(t, 1, next.Page)
}

func TestProcessPage_ShortPageEndsChain(t *testing.T) {
	f := createTestFanoutService(t, 5)

	cutoff := time.Now()
	f.metricRepo.EXPECT().
		ListDueForReminder(mock.Anything, cutoff, 5, "cursor-1").
		Return(dueMetrics(2), "", nil)
	pageDirectoryLookups(f)
	f.sender.EXPECT().
		SendBulk(mock.Anything, mock.AnythingOfType("[]service.PushMessage")).
		RunAndReturn(func(_ context.Context, msgs []service.PushMessage) ([]service.SendResult, error) {
			return okResults(msgs), nil
		})
	f.metricRepo.EXPECT().
		MarkRemindedThisCycle(mock.Anything, mock.AnythingOfType("[]entity.CustomerKey")).
		Return(nil)

	job := &service.FanoutJob{RequestID: "run-1", Cutoff: cutoff, Cursor: "cursor-1", Page: 1}
	require.NoError(t, f.service.ProcessPage(context.Background(), job))

	f.queue.AssertNotCalled(t, "PublishPage", mock.Anything, mock.Anything)
}

func TestProcessPage_EmptyPageIsNoOp(t *testing.T) {
	f := createTestFanoutService(t, 5)

	cutoff := time.Now()
	f.metricRepo.EXPECT().
		ListDueForReminder(mock.Anything, cutoff, 5, "").
		Return(nil, "", nil)

	job := &service.FanoutJob{RequestID: "run-1", Cutoff: cutoff}
	require.NoError(t, f.service.ProcessPage(context.Background(), job))

	f.sender.AssertNotCalled(t, "SendBulk", mock.Anything, mock.Anything)
	f.metricRepo.AssertNotCalled(t, "MarkRemindedThisCycle", mock.Anything, mock.Anything)
}

func TestProcessPage_MarksEveryRecordIncludingSkipsAndFailures(t *testing.T) {
	f := createTestFanoutService(t, 5)

	cutoff := time.Now()
	metrics := dueMetrics(3)
	metrics[1].FCMToken = "" // not sendable, still handled this cycle

	f.metricRepo.EXPECT().
		ListDueForReminder(mock.Anything, cutoff, 5, "").
		Return(metrics, "", nil)
	pageDirectoryLookups(f)

	f.sender.EXPECT().
		SendBulk(mock.Anything, mock.MatchedBy(func(msgs []service.PushMessage) bool {
			return len(msgs) == 2 && msgs[0].Token == "tok-0" && msgs[1].Token == "tok-2"
		})).
		RunAndReturn(func(_ context.Context, msgs []service.PushMessage) ([]service.SendResult, error) {
			return []service.SendResult{
				{Token: msgs[0].Token},
				{Token: msgs[1].Token, Err: service.ErrTokenInvalid, Invalid: true},
			}, nil
		})
	f.metricRepo.EXPECT().
		RemoveToken(mock.Anything, entity.CustomerKey{BrandID: "brand-1", CustomerID: "cust-2"}).
		Return(nil)
	f.metricRepo.EXPECT().
		MarkRemindedThisCycle(mock.Anything, []entity.CustomerKey{
			{BrandID: "brand-1", CustomerID: "cust-0"},
			{BrandID: "brand-1", CustomerID: "cust-1"},
			{BrandID: "brand-1", CustomerID: "cust-2"},
		}).
		Return(nil)

	job := &service.FanoutJob{RequestID: "run-1", Cutoff: cutoff}
	require.NoError(t, f.service.ProcessPage(context.Background(), job))
}

func TestProcessPage_BulkSendFailureRetriesWholePage(t *testing.T) {
	f := createTestFanoutService(t, 5)

	cutoff := time.Now()
	f.metricRepo.EXPECT().
		ListDueForReminder(mock.Anything, cutoff, 5, "").
		Return(dueMetrics(2), "", nil)
	pageDirectoryLookups(f)
	f.sender.EXPECT().
		SendBulk(mock.Anything, mock.AnythingOfType("[]service.PushMessage")).
		Return(nil, assert.AnError)

	job := &service.FanoutJob{RequestID: "run-1", Cutoff: cutoff}
	require.Error(t, f.service.ProcessPage(context.Background(), job))

	f.metricRepo.AssertNotCalled(t, "MarkRemindedThisCycle", mock.Anything, mock.Anything)
}

// pagedMetricRepo emulates the due-record query: a fixed due ordering, a
// positional resume cursor, and the cycle flag excluding records from later
// reads.
type pagedMetricRepo struct {
	records []*entity.CustomerMetric
	flagged map[entity.CustomerKey]bool
	lists   int
}

func (r *pagedMetricRepo) ListDueForReminder(_ context.Context, _ time.Time, pageSize int, cursor string) ([]*entity.CustomerMetric, string, error) {
	r.lists++

	start := 0
	if cursor != "" {
		last, err := strconv.Atoi(cursor)
		if err != nil {
			return nil, "", err
		}
		start = last + 1
	}

	var page []*entity.CustomerMetric
	lastIndex := -1
	for i := start; i < len(r.records) && len(page) < pageSize; i++ {
		if r.flagged[r.records[i].Key()] {
			continue
		}
		page = append(page, r.records[i])
		lastIndex = i
	}

	nextCursor := ""
	if len(page) == pageSize {
		nextCursor = strconv.Itoa(lastIndex)
	}

	return page, nextCursor, nil
}

func (r *pagedMetricRepo) MarkRemindedThisCycle(_ context.Context, keys []entity.CustomerKey) error {
	for _, key := range keys {
		r.flagged[key] = true
	}

	return nil
}

func (r *pagedMetricRepo) FindByCustomer(context.Context, string, string) (*entity.CustomerMetric, error) {
	panic("not used by the fan-out chain")
}

func (r *pagedMetricRepo) ApplyCompletion(context.Context, entity.CustomerKey, entity.MetricCompletion) error {
	panic("not used by the fan-out chain")
}

func (r *pagedMetricRepo) RemoveToken(context.Context, entity.CustomerKey) error {
	panic("not used by the fan-out chain")
}

func TestProcessPage_ChainHandlesEveryRecordOnce(t *testing.T) {
	const pageSize = 2

	metricRepo := &pagedMetricRepo{
		records: dueMetrics(2*pageSize + 1),
		flagged: make(map[entity.CustomerKey]bool),
	}

	directoryRepo := repomocks.NewMockDirectoryRepository(t)
	directoryRepo.EXPECT().
		FindBrandsByIDs(mock.Anything, []string{"brand-1"}).
		Return(map[string]*entity.Brand{"brand-1": {ID: "brand-1", Locale: "hr"}}, nil)
	directoryRepo.EXPECT().
		FindStaffByIDs(mock.Anything, []string{"staff-1"}).
		Return(map[string]*entity.Staff{"staff-1": {ID: "staff-1", Name: "Ana"}}, nil)

	sender := servicemocks.NewMockPushSender(t)
	var sent int
	sender.EXPECT().
		SendBulk(mock.Anything, mock.AnythingOfType("[]service.PushMessage")).
		RunAndReturn(func(_ context.Context, msgs []service.PushMessage) ([]service.SendResult, error) {
			sent += len(msgs)

			return okResults(msgs), nil
		})

	queue := servicemocks.NewMockFanoutQueue(t)
	var continuations []*service.FanoutJob
	queue.EXPECT().
		PublishPage(mock.Anything, mock.AnythingOfType("*service.FanoutJob")).
		Run(func(_ context.Context, job *service.FanoutJob) { continuations = append(continuations, job) }).
		Return(nil)

	cfg := testRetentionConfig()
	cfg.Retention.PageSize = pageSize
	svc := NewFanoutService(testLogger(), cfg, metricRepo, directoryRepo, queue, sender)

	// Drive the chain the way the push subscription would: process the
	// first page, then feed every published continuation back in.
	first := &service.FanoutJob{RequestID: "run-1", Cutoff: time.Now()}
	pending := []*service.FanoutJob{first}
	pages := 0
	for len(pending) > 0 {
		job := pending[0]
		pending = pending[1:]

		before := len(continuations)
		require.NoError(t, svc.ProcessPage(context.Background(), job))
		pages++
		pending = append(pending, continuations[before:]...)
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, 3, metricRepo.lists)
	assert.Equal(t, len(metricRepo.records), sent)
	for _, m := range metricRepo.records {
		assert.True(t, metricRepo.flagged[m.Key()], m.CustomerID)
	}

	// A redelivered page after the run finds everything flagged and ends
	// without sending or continuing.
	require.NoError(t, svc.ProcessPage(context.Background(), first))
	assert.Equal(t, len(metricRepo.records), sent)
	assert.Len(t, continuations, 2)
}

func TestProcessPage_DirectoryFailureDegradesToDefaultCopy(t *testing.T) {
	f := createTestFanoutService(t, 5)

	cutoff := time.Now()
	f.metricRepo.EXPECT().
		ListDueForReminder(mock.Anything, cutoff, 5, "").
		Return(dueMetrics(1), "", nil)
	f.directoryRepo.EXPECT().
		FindBrandsByIDs(mock.Anything, []string{"brand-1"}).
		Return(nil, assert.AnError)
	f.directoryRepo.EXPECT().
		FindStaffByIDs(mock.Anything, []string{"staff-1"}).
		Return(nil, assert.AnError)

	var sent []service.PushMessage
	f.sender.EXPECT().
		SendBulk(mock.Anything, mock.AnythingOfType("[]service.PushMessage")).
		RunAndReturn(func(_ context.Context, msgs []service.PushMessage) ([]service.SendResult, error) {
			sent = msgs

			return okResults(msgs), nil
		})
	f.metricRepo.EXPECT().
		MarkRemindedThisCycle(mock.Anything, mock.AnythingOfType("[]entity.CustomerKey")).
		Return(nil)

	job := &service.FanoutJob{RequestID: "run-1", Cutoff: cutoff}
	require.NoError(t, f.service.ProcessPage(context.Background(), job))

	require.Len(t, sent, 1)
	assert.Equal(t, "Customer 0, nedostaješ nam!", sent[0].Title)
	assert.Equal(t, dataTypeVisitReminder, sent[0].Data["type"])
}
