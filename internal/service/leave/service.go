package leave

import (
	"context"
	"time"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/leave"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
)

type LeaveServiceImpl struct {
	leaveRepo  leave.LeaveRepository
	workerRepo worker.WorkerRepository
	now        func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRepository, workerRepo worker.WorkerRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:  leaveRepo,
		workerRepo: workerRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !w.IsActive {
		return leave.LeaveResponse{}, worker.ErrWorkerInactive
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	l := leave.Leave{
		WorkerID: req.WorkerID,
		Date:     date,
		Reason:   req.Reason,
		Status:   leave.StatusPending,
	}
	created, err := s.leaveRepo.Create(ctx, l)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(created), nil
}

// ListByWorker implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return toResponses(leaves), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(leaves), nil
}

// Decide implements leave.LeaveService. Transitions are one-way; a second
// decision conflicts and the first stands.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if l.Decided() {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyDecided
	}

	now := s.now()
	l.Status = leave.Status(req.Status)
	l.DecidedAt = &now

	if err := s.leaveRepo.Update(ctx, l); err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(l), nil
}

// ClearAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ClearAll(ctx context.Context) (int64, error) {
	return s.leaveRepo.DeleteAll(ctx)
}

func toResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.NewLeaveResponse(l))
	}
	return responses
}
