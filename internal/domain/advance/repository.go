package advance

import (
	"context"
	"time"
)

// AdvanceRepository defines data access for advance requests.
type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	Update(ctx context.Context, a Advance) error
	ListByWorker(ctx context.Context, workerID string) ([]Advance, error)
	ListPending(ctx context.Context) ([]Advance, error)

	// ListDue returns scheduled advances whose payment date is on or before
	// today. These are surfaced to the admin, never auto-paid.
	ListDue(ctx context.Context, today time.Time) ([]Advance, error)

	DeleteAll(ctx context.Context) (int64, error)
}

// AdvanceService defines business logic for the advance lifecycle.
type AdvanceService interface {
	Request(ctx context.Context, req RequestAdvanceRequest) (AdvanceResponse, error)
	ListByWorker(ctx context.Context, workerID string) ([]AdvanceResponse, error)
	ListPending(ctx context.Context) ([]AdvanceResponse, error)
	ListDue(ctx context.Context) ([]AdvanceResponse, error)
	Decide(ctx context.Context, req DecideAdvanceRequest) (AdvanceResponse, error)
	ClearAll(ctx context.Context) (int64, error)
}
