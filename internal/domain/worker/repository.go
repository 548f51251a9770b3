package worker

import (
	"context"
	"time"
)

// WorkerRepository defines data access for worker/admin identities.
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)

	// GetByPhone is the login lookup.
	GetByPhone(ctx context.Context, phone string) (Worker, error)

	// List returns all workers (not admins), active first.
	List(ctx context.Context) ([]Worker, error)

	Update(ctx context.Context, w Worker) error

	// Deactivate soft-deletes: workers are never hard-deleted in normal flow.
	Deactivate(ctx context.Context, id string) error

	// ListExpiringDocuments returns active workers whose iqama or passport
	// expires on or before the cutoff date.
	ListExpiringDocuments(ctx context.Context, cutoff time.Time) ([]Worker, error)
}

// WorkerService defines business logic for worker administration.
type WorkerService interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	Get(ctx context.Context, id string) (WorkerResponse, error)
	List(ctx context.Context) ([]WorkerResponse, error)
	Update(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)
	Deactivate(ctx context.Context, id string) error
	ListExpiringDocuments(ctx context.Context, withinDays int) ([]WorkerResponse, error)
}
