package work

import (
	"context"
	"time"
)

// WorkRepository defines data access for work entries.
type WorkRepository interface {
	Create(ctx context.Context, entry WorkEntry) (WorkEntry, error)

	GetByID(ctx context.Context, id string) (WorkEntry, error)

	// GetByWorkerAndDate enforces the one-entry-per-day invariant at read time;
	// returns nil when no entry exists.
	GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*WorkEntry, error)

	Update(ctx context.Context, entry WorkEntry) error

	ListByWorker(ctx context.Context, workerID string) ([]WorkEntry, error)

	// ListPending returns entries awaiting admin approval (manual pending and
	// completed live-timer entries), oldest first.
	ListPending(ctx context.Context) ([]WorkEntry, error)

	// GetActiveByWorker returns the worker's live entry
	// (running/ot_requested/ot_running), or nil.
	GetActiveByWorker(ctx context.Context, workerID string) (*WorkEntry, error)

	// ListActive returns all live entries across workers, for the
	// housekeeping sweep.
	ListActive(ctx context.Context) ([]WorkEntry, error)

	// DeleteAll is the bulk admin reset. Returns the number of rows removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// WorkService defines business logic for the shift lifecycle.
type WorkService interface {
	// Manual entries
	Submit(ctx context.Context, req SubmitWorkRequest) (WorkResponse, error)
	Status(ctx context.Context, workerID string, date string) (WorkResponse, error)
	ListByWorker(ctx context.Context, workerID string) ([]WorkResponse, error)

	// Live timer
	Start(ctx context.Context, workerID string) (WorkResponse, error)
	End(ctx context.Context, workerID string) (WorkResponse, error)
	RequestOT(ctx context.Context, workerID string) (WorkResponse, error)
	EndOT(ctx context.Context, workerID string) (WorkResponse, error)

	// Admin
	ListPending(ctx context.Context) ([]WorkResponse, error)
	Approve(ctx context.Context, id string) (WorkResponse, error)
	DecideOT(ctx context.Context, req OTDecisionRequest) (WorkResponse, error)
	ClearAll(ctx context.Context) (int64, error)
}
