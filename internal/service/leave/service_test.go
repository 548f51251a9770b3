package leave

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/leave"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
)

type fakeLeaveRepo struct {
	leaves map[string]leave.Leave
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[string]leave.Leave)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = uuid.NewString()
	r.leaves[l.ID] = l
	return l, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Leave, error) {
	l, ok := r.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, l leave.Leave) error {
	if _, ok := r.leaves[l.ID]; !ok {
		return leave.ErrLeaveNotFound
	}
	r.leaves[l.ID] = l
	return nil
}

func (r *fakeLeaveRepo) ListByWorker(_ context.Context, workerID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.WorkerID == workerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListPending(_ context.Context) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if !l.Decided() {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.leaves))
	r.leaves = make(map[string]leave.Leave)
	return n, nil
}

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
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

func (r *fakeWorkerRepo) GetByPhone(_ context.Context, _ string) (worker.Worker, error) {
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (r *fakeWorkerRepo) List(_ context.Context) ([]worker.Worker, error) { return nil, nil }

func (r *fakeWorkerRepo) Update(_ context.Context, w worker.Worker) error { return nil }

func (r *fakeWorkerRepo) Deactivate(_ context.Context, _ string) error { return nil }

func (r *fakeWorkerRepo) ListExpiringDocuments(_ context.Context, _ time.Time) ([]worker.Worker, error) {
	return nil, nil
}

func newTestService() (*LeaveServiceImpl, *fakeLeaveRepo) {
	repo := newFakeLeaveRepo()
	svc := &LeaveServiceImpl{
		leaveRepo: repo,
		workerRepo: &fakeWorkerRepo{workers: map[string]worker.Worker{
			"worker-1": {ID: "worker-1", Name: "Ahmed", IsActive: true},
		}},
		now: func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
	return svc, repo
}

func TestLeaveService_Apply(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	resp, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
		WorkerID: "worker-1",
		Date:     "2024-03-15",
		Reason:   "family visit",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Nil(t, resp.DecidedAt)

	_, err = svc.Apply(ctx, leave.ApplyLeaveRequest{
		WorkerID: "nobody",
		Date:     "2024-03-15",
	})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to rejected", func(t *testing.T) {
		svc, _ := newTestService()
		applied, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			WorkerID: "worker-1",
			Date:     "2024-03-15",
			Reason:   "sick",
		})
		require.NoError(t, err)

		decided, err := svc.Decide(ctx, leave.DecideLeaveRequest{ID: applied.ID, Status: "rejected"})
		require.NoError(t, err)
		assert.Equal(t, string(leave.StatusRejected), decided.Status)
		require.NotNil(t, decided.DecidedAt)
	})

	t.Run("second decision conflicts and the first stands", func(t *testing.T) {
		svc, repo := newTestService()
		applied, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			WorkerID: "worker-1",
			Date:     "2024-03-15",
			Reason:   "sick",
		})
		require.NoError(t, err)

		_, err = svc.Decide(ctx, leave.DecideLeaveRequest{ID: applied.ID, Status: "accepted"})
		require.NoError(t, err)

		_, err = svc.Decide(ctx, leave.DecideLeaveRequest{ID: applied.ID, Status: "rejected"})
		assert.ErrorIs(t, err, leave.ErrLeaveAlreadyDecided)

		stored, err := repo.GetByID(ctx, applied.ID)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusAccepted, stored.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Decide(ctx, leave.DecideLeaveRequest{ID: "any", Status: "maybe"})
		assert.Error(t, err)
	})
}
