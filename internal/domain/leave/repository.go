package leave

import "context"

// LeaveRepository defines data access for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	Update(ctx context.Context, l Leave) error
	ListByWorker(ctx context.Context, workerID string) ([]Leave, error)
	ListPending(ctx context.Context) ([]Leave, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// LeaveService defines business logic for the leave lifecycle.
type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	ListByWorker(ctx context.Context, workerID string) ([]LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
	ClearAll(ctx context.Context) (int64, error)
}
