package work

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/config"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
)

type fakeWorkRepo struct {
	entries map[string]work.WorkEntry
}

func newFakeWorkRepo() *fakeWorkRepo {
	return &fakeWorkRepo{entries: make(map[string]work.WorkEntry)}
}

func (r *fakeWorkRepo) Create(_ context.Context, entry work.WorkEntry) (work.WorkEntry, error) {
	entry.ID = uuid.NewString()
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *fakeWorkRepo) GetByID(_ context.Context, id string) (work.WorkEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return work.WorkEntry{}, work.ErrEntryNotFound
	}
	return e, nil
}

func (r *fakeWorkRepo) GetByWorkerAndDate(_ context.Context, workerID string, date time.Time) (*work.WorkEntry, error) {
	for _, e := range r.entries {
		if e.WorkerID == workerID && e.Date.Equal(date) {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

func (r *fakeWorkRepo) Update(_ context.Context, entry work.WorkEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return work.ErrEntryNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeWorkRepo) ListByWorker(_ context.Context, workerID string) ([]work.WorkEntry, error) {
	var out []work.WorkEntry
	for _, e := range r.entries {
		if e.WorkerID == workerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeWorkRepo) ListPending(_ context.Context) ([]work.WorkEntry, error) {
	var out []work.WorkEntry
	for _, e := range r.entries {
		if e.AwaitingApproval() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeWorkRepo) GetActiveByWorker(_ context.Context, workerID string) (*work.WorkEntry, error) {
	for _, e := range r.entries {
		if e.WorkerID == workerID && e.Active() {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

func (r *fakeWorkRepo) ListActive(_ context.Context) ([]work.WorkEntry, error) {
	var out []work.WorkEntry
	for _, e := range r.entries {
		if e.Active() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeWorkRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.entries))
	r.entries = make(map[string]work.WorkEntry)
	return n, nil
}

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func newFakeWorkerRepo(workers ...worker.Worker) *fakeWorkerRepo {
	r := &fakeWorkerRepo{workers: make(map[string]worker.Worker)}
	for _, w := range workers {
		r.workers[w.ID] = w
	}
	return r
}

func (r *fakeWorkerRepo) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	r.workers[w.ID] = w
	return w, nil
}

func (r *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (r *fakeWorkerRepo) GetByPhone(_ context.Context, phone string) (worker.Worker, error) {
	for _, w := range r.workers {
		if w.Phone == phone {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (r *fakeWorkerRepo) List(_ context.Context) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range r.workers {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWorkerRepo) Update(_ context.Context, w worker.Worker) error {
	if _, ok := r.workers[w.ID]; !ok {
		return worker.ErrWorkerNotFound
	}
	r.workers[w.ID] = w
	return nil
}

func (r *fakeWorkerRepo) Deactivate(_ context.Context, id string) error {
	w, ok := r.workers[id]
	if !ok {
		return worker.ErrWorkerNotFound
	}
	w.IsActive = false
	r.workers[id] = w
	return nil
}

func (r *fakeWorkerRepo) ListExpiringDocuments(_ context.Context, _ time.Time) ([]worker.Worker, error) {
	return nil, nil
}

var testPayroll = config.PayrollConfig{
	DaysInMonth:        30,
	StandardShiftHours: 10,
	OTDecisionWindow:   time.Minute,
	MaxOTDuration:      4 * time.Hour,
}

const testWorkerID = "worker-1"

func newTestService(t *testing.T, at time.Time) (*WorkServiceImpl, *fakeWorkRepo, *time.Time) {
	t.Helper()
	now := at
	repo := newFakeWorkRepo()
	svc := &WorkServiceImpl{
		workRepo: repo,
		workerRepo: newFakeWorkerRepo(worker.Worker{
			ID:            testWorkerID,
			Name:          "Ahmed",
			IsActive:      true,
			MonthlySalary: decimal.NewFromInt(3000),
		}),
		payroll: testPayroll,
		now:     func() time.Time { return now },
	}
	return svc, repo, &now
}

func TestWorkService_Submit(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("creates a pending entry", func(t *testing.T) {
		svc, _, _ := newTestService(t, today)

		resp, err := svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:   testWorkerID,
			Date:       "2024-03-09",
			TotalHours: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, string(work.StatusPending), resp.Status)
		assert.False(t, resp.IsApproved)
		assert.Equal(t, 10.0, resp.TotalHours)
	})

	t.Run("resubmission overwrites the pending entry in place", func(t *testing.T) {
		svc, _, _ := newTestService(t, today)

		first, err := svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:   testWorkerID,
			Date:       "2024-03-09",
			TotalHours: 8,
		})
		require.NoError(t, err)

		second, err := svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:   testWorkerID,
			Date:       "2024-03-09",
			TotalHours: 9,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 9.0, second.TotalHours)

		entries, err := svc.ListByWorker(ctx, testWorkerID)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("approved entry rejects resubmission", func(t *testing.T) {
		svc, _, _ := newTestService(t, today)

		resp, err := svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:   testWorkerID,
			Date:       "2024-03-09",
			TotalHours: 8,
		})
		require.NoError(t, err)

		_, err = svc.Approve(ctx, resp.ID)
		require.NoError(t, err)

		_, err = svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:   testWorkerID,
			Date:       "2024-03-09",
			TotalHours: 9,
		})
		assert.ErrorIs(t, err, work.ErrEntryApproved)
	})

	t.Run("future date rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t, today)

		_, err := svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:   testWorkerID,
			Date:       "2024-03-11",
			TotalHours: 8,
		})
		assert.Error(t, err)
	})

	t.Run("timestamps override client hours", func(t *testing.T) {
		svc, _, _ := newTestService(t, today)

		start := "2024-03-09T07:00:00Z"
		end := "2024-03-09T19:00:00Z"
		resp, err := svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:     testWorkerID,
			Date:         "2024-03-09",
			StartTime:    &start,
			EndTime:      &end,
			BreakMinutes: 60,
			TotalHours:   99,
		})
		require.NoError(t, err)
		assert.Equal(t, 11.0, resp.TotalHours)
	})
}

func TestWorkService_LiveTimer(t *testing.T) {
	ctx := context.Background()
	shiftStart := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)

	t.Run("start then end records elapsed hours", func(t *testing.T) {
		svc, _, now := newTestService(t, shiftStart)

		started, err := svc.Start(ctx, testWorkerID)
		require.NoError(t, err)
		assert.Equal(t, string(work.StatusRunning), started.Status)

		*now = shiftStart.Add(9 * time.Hour)
		ended, err := svc.End(ctx, testWorkerID)
		require.NoError(t, err)
		assert.Equal(t, string(work.StatusCompleted), ended.Status)
		assert.Equal(t, 9.0, ended.TotalHours)
	})

	t.Run("second start conflicts", func(t *testing.T) {
		svc, _, _ := newTestService(t, shiftStart)

		_, err := svc.Start(ctx, testWorkerID)
		require.NoError(t, err)

		_, err = svc.Start(ctx, testWorkerID)
		assert.ErrorIs(t, err, work.ErrShiftAlreadyRunning)
	})

	t.Run("start blocked while previous entry awaits approval", func(t *testing.T) {
		svc, _, now := newTestService(t, shiftStart)

		_, err := svc.Start(ctx, testWorkerID)
		require.NoError(t, err)
		*now = shiftStart.Add(8 * time.Hour)
		_, err = svc.End(ctx, testWorkerID)
		require.NoError(t, err)

		_, err = svc.Start(ctx, testWorkerID)
		assert.ErrorIs(t, err, work.ErrAwaitingApproval)
	})

	t.Run("end without active shift", func(t *testing.T) {
		svc, _, _ := newTestService(t, shiftStart)

		_, err := svc.End(ctx, testWorkerID)
		assert.ErrorIs(t, err, work.ErrNoActiveShift)
	})
}

func TestWorkService_Overtime(t *testing.T) {
	ctx := context.Background()
	shiftStart := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)

	t.Run("request before shift done", func(t *testing.T) {
		svc, _, now := newTestService(t, shiftStart)

		_, err := svc.Start(ctx, testWorkerID)
		require.NoError(t, err)

		*now = shiftStart.Add(9 * time.Hour)
		_, err = svc.RequestOT(ctx, testWorkerID)
		assert.ErrorIs(t, err, work.ErrShiftNotDone)
	})

	t.Run("grant runs overtime from the request instant", func(t *testing.T) {
		svc, _, now := newTestService(t, shiftStart)

		_, err := svc.Start(ctx, testWorkerID)
		require.NoError(t, err)

		requestAt := shiftStart.Add(10 * time.Hour)
		*now = requestAt
		requested, err := svc.RequestOT(ctx, testWorkerID)
		require.NoError(t, err)
		assert.Equal(t, string(work.StatusOTRequested), requested.Status)

		*now = requestAt.Add(30 * time.Second)
		granted, err := svc.DecideOT(ctx, work.OTDecisionRequest{ID: requested.ID, Grant: true})
		require.NoError(t, err)
		assert.Equal(t, string(work.StatusOTRunning), granted.Status)
		require.NotNil(t, granted.OTStartTime)
		assert.Equal(t, requestAt.Format(time.RFC3339), *granted.OTStartTime)

		*now = requestAt.Add(2 * time.Hour)
		ended, err := svc.EndOT(ctx, testWorkerID)
		require.NoError(t, err)
		assert.Equal(t, string(work.StatusCompleted), ended.Status)
		assert.Equal(t, 2.0, ended.OTHours)
	})

	t.Run("deny completes the shift", func(t *testing.T) {
		svc, _, now := newTestService(t, shiftStart)

		_, err := svc.Start(ctx, testWorkerID)
		require.NoError(t, err)

		*now = shiftStart.Add(10 * time.Hour)
		requested, err := svc.RequestOT(ctx, testWorkerID)
		require.NoError(t, err)

		denied, err := svc.DecideOT(ctx, work.OTDecisionRequest{ID: requested.ID, Grant: false})
		require.NoError(t, err)
		assert.Equal(t, string(work.StatusCompleted), denied.Status)
		assert.Equal(t, 0.0, denied.OTHours)
	})

	t.Run("decision on a non-requested entry", func(t *testing.T) {
		svc, _, now := newTestService(t, shiftStart)

		_, err := svc.Start(ctx, testWorkerID)
		require.NoError(t, err)
		*now = shiftStart.Add(10 * time.Hour)
		ended, err := svc.End(ctx, testWorkerID)
		require.NoError(t, err)

		_, err = svc.DecideOT(ctx, work.OTDecisionRequest{ID: ended.ID, Grant: true})
		assert.ErrorIs(t, err, work.ErrNoOvertimeRequest)
	})
}

func TestWorkService_Approve(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("approve locks the entry", func(t *testing.T) {
		svc, _, _ := newTestService(t, today)

		resp, err := svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:   testWorkerID,
			Date:       "2024-03-09",
			TotalHours: 10,
		})
		require.NoError(t, err)

		approved, err := svc.Approve(ctx, resp.ID)
		require.NoError(t, err)
		assert.True(t, approved.IsApproved)
		assert.Equal(t, string(work.StatusApproved), approved.Status)

		_, err = svc.Approve(ctx, resp.ID)
		assert.ErrorIs(t, err, work.ErrAlreadyApproved)
	})

	t.Run("running entry cannot be approved", func(t *testing.T) {
		svc, _, _ := newTestService(t, today)

		started, err := svc.Start(ctx, testWorkerID)
		require.NoError(t, err)

		_, err = svc.Approve(ctx, started.ID)
		assert.ErrorIs(t, err, work.ErrStillRunning)
	})

	t.Run("approved entries leave the pending queue", func(t *testing.T) {
		svc, _, _ := newTestService(t, today)

		resp, err := svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:   testWorkerID,
			Date:       "2024-03-09",
			TotalHours: 10,
		})
		require.NoError(t, err)

		pending, err := svc.ListPending(ctx)
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		_, err = svc.Approve(ctx, resp.ID)
		require.NoError(t, err)

		pending, err = svc.ListPending(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestWorkService_ClearAll(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, today)

	for _, date := range []string{"2024-03-07", "2024-03-08", "2024-03-09"} {
		_, err := svc.Submit(ctx, work.SubmitWorkRequest{
			WorkerID:   testWorkerID,
			Date:       date,
			TotalHours: 10,
		})
		require.NoError(t, err)
	}

	n, err := svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	entries, err := svc.ListByWorker(ctx, testWorkerID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
