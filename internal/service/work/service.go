package work

import (
	"context"
	"fmt"
	"time"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/config"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
)

type WorkServiceImpl struct {
	workRepo   work.WorkRepository
	workerRepo worker.WorkerRepository
	payroll    config.PayrollConfig
	now        func() time.Time
}

func NewWorkService(workRepo work.WorkRepository, workerRepo worker.WorkerRepository, payroll config.PayrollConfig) work.WorkService {
	return &WorkServiceImpl{
		workRepo:   workRepo,
		workerRepo: workerRepo,
		payroll:    payroll,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *WorkServiceImpl) activeWorker(ctx context.Context, workerID string) (worker.Worker, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return worker.Worker{}, err
	}
	if !w.IsActive {
		return worker.Worker{}, worker.ErrWorkerInactive
	}
	return w, nil
}

// Submit implements work.WorkService. Resubmitting for a date that already has
// a pending entry overwrites it in place; an approved entry is immutable.
func (s *WorkServiceImpl) Submit(ctx context.Context, req work.SubmitWorkRequest) (work.WorkResponse, error) {
	now := s.now()
	if err := req.Validate(now); err != nil {
		return work.WorkResponse{}, err
	}

	if _, err := s.activeWorker(ctx, req.WorkerID); err != nil {
		return work.WorkResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	entry := work.WorkEntry{
		WorkerID:     req.WorkerID,
		Date:         date,
		BreakMinutes: req.BreakMinutes,
		Notes:        req.Notes,
		TotalHours:   req.TotalHours,
		OTHours:      req.OTHours,
		Status:       work.StatusPending,
	}
	if req.StartTime != nil {
		t, _ := time.Parse(time.RFC3339, *req.StartTime)
		entry.StartTime = &t
	}
	if req.EndTime != nil {
		t, _ := time.Parse(time.RFC3339, *req.EndTime)
		entry.EndTime = &t
	}
	// The recorded timestamps are authoritative over the client's arithmetic.
	if entry.StartTime != nil && entry.EndTime != nil {
		entry.TotalHours = work.ElapsedHours(*entry.StartTime, *entry.EndTime, entry.BreakMinutes)
	}

	existing, err := s.workRepo.GetByWorkerAndDate(ctx, req.WorkerID, date)
	if err != nil {
		return work.WorkResponse{}, fmt.Errorf("failed to look up entry: %w", err)
	}

	if existing == nil {
		created, err := s.workRepo.Create(ctx, entry)
		if err != nil {
			return work.WorkResponse{}, err
		}
		return work.NewWorkResponse(created), nil
	}

	if existing.IsApproved {
		return work.WorkResponse{}, work.ErrEntryApproved
	}

	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	if err := s.workRepo.Update(ctx, entry); err != nil {
		return work.WorkResponse{}, err
	}
	return work.NewWorkResponse(entry), nil
}

// Status implements work.WorkService.
func (s *WorkServiceImpl) Status(ctx context.Context, workerID string, date string) (work.WorkResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return work.WorkResponse{}, work.ErrEntryNotFound
	}

	entry, err := s.workRepo.GetByWorkerAndDate(ctx, workerID, day)
	if err != nil {
		return work.WorkResponse{}, err
	}
	if entry == nil {
		return work.WorkResponse{}, work.ErrEntryNotFound
	}
	return work.NewWorkResponse(*entry), nil
}

// ListByWorker implements work.WorkService.
func (s *WorkServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]work.WorkResponse, error) {
	entries, err := s.workRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return toResponses(entries), nil
}

// Start implements work.WorkService. One live shift per worker, one entry per
// calendar day.
func (s *WorkServiceImpl) Start(ctx context.Context, workerID string) (work.WorkResponse, error) {
	if _, err := s.activeWorker(ctx, workerID); err != nil {
		return work.WorkResponse{}, err
	}

	active, err := s.workRepo.GetActiveByWorker(ctx, workerID)
	if err != nil {
		return work.WorkResponse{}, err
	}
	if active != nil {
		return work.WorkResponse{}, work.ErrShiftAlreadyRunning
	}

	now := s.now()
	today := now.Truncate(24 * time.Hour)

	existing, err := s.workRepo.GetByWorkerAndDate(ctx, workerID, today)
	if err != nil {
		return work.WorkResponse{}, err
	}
	if existing != nil {
		if existing.IsApproved {
			return work.WorkResponse{}, work.ErrEntryApproved
		}
		return work.WorkResponse{}, work.ErrAwaitingApproval
	}

	entry := work.WorkEntry{
		WorkerID:  workerID,
		Date:      today,
		StartTime: &now,
		Status:    work.StatusRunning,
	}
	created, err := s.workRepo.Create(ctx, entry)
	if err != nil {
		return work.WorkResponse{}, err
	}
	return work.NewWorkResponse(created), nil
}

// End implements work.WorkService.
func (s *WorkServiceImpl) End(ctx context.Context, workerID string) (work.WorkResponse, error) {
	entry, err := s.workRepo.GetActiveByWorker(ctx, workerID)
	if err != nil {
		return work.WorkResponse{}, err
	}
	if entry == nil {
		return work.WorkResponse{}, work.ErrNoActiveShift
	}

	entry.CompleteAt(s.now())
	if err := s.workRepo.Update(ctx, *entry); err != nil {
		return work.WorkResponse{}, err
	}
	return work.NewWorkResponse(*entry), nil
}

// RequestOT implements work.WorkService. Only a running shift that has served
// the full standard length may ask for overtime.
func (s *WorkServiceImpl) RequestOT(ctx context.Context, workerID string) (work.WorkResponse, error) {
	entry, err := s.workRepo.GetActiveByWorker(ctx, workerID)
	if err != nil {
		return work.WorkResponse{}, err
	}
	if entry == nil || entry.Status != work.StatusRunning {
		return work.WorkResponse{}, work.ErrNoActiveShift
	}

	now := s.now()
	if entry.StartTime == nil || work.ElapsedHours(*entry.StartTime, now, entry.BreakMinutes) < s.payroll.StandardShiftHours {
		return work.WorkResponse{}, work.ErrShiftNotDone
	}

	entry.Status = work.StatusOTRequested
	entry.OTRequestedAt = &now
	if err := s.workRepo.Update(ctx, *entry); err != nil {
		return work.WorkResponse{}, err
	}
	return work.NewWorkResponse(*entry), nil
}

// EndOT implements work.WorkService.
func (s *WorkServiceImpl) EndOT(ctx context.Context, workerID string) (work.WorkResponse, error) {
	entry, err := s.workRepo.GetActiveByWorker(ctx, workerID)
	if err != nil {
		return work.WorkResponse{}, err
	}
	if entry == nil || entry.Status != work.StatusOTRunning {
		return work.WorkResponse{}, work.ErrNoActiveShift
	}

	entry.CompleteAt(s.now())
	if err := s.workRepo.Update(ctx, *entry); err != nil {
		return work.WorkResponse{}, err
	}
	return work.NewWorkResponse(*entry), nil
}

// ListPending implements work.WorkService.
func (s *WorkServiceImpl) ListPending(ctx context.Context) ([]work.WorkResponse, error) {
	entries, err := s.workRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(entries), nil
}

// Approve implements work.WorkService. Approving twice is a conflict, not a
// silent no-op, so a stale admin tab gets told the queue moved on.
func (s *WorkServiceImpl) Approve(ctx context.Context, id string) (work.WorkResponse, error) {
	entry, err := s.workRepo.GetByID(ctx, id)
	if err != nil {
		return work.WorkResponse{}, err
	}

	if entry.IsApproved {
		return work.WorkResponse{}, work.ErrAlreadyApproved
	}
	if entry.Active() {
		return work.WorkResponse{}, work.ErrStillRunning
	}

	entry.Approve(s.now())
	if err := s.workRepo.Update(ctx, entry); err != nil {
		return work.WorkResponse{}, err
	}
	return work.NewWorkResponse(entry), nil
}

// DecideOT implements work.WorkService. Granting starts the overtime clock at
// the request instant so the wait for a decision is never unpaid; denying
// completes the shift on the spot.
func (s *WorkServiceImpl) DecideOT(ctx context.Context, req work.OTDecisionRequest) (work.WorkResponse, error) {
	entry, err := s.workRepo.GetByID(ctx, req.ID)
	if err != nil {
		return work.WorkResponse{}, err
	}

	if entry.Status != work.StatusOTRequested || entry.OTRequestedAt == nil {
		return work.WorkResponse{}, work.ErrNoOvertimeRequest
	}

	if req.Grant {
		entry.Status = work.StatusOTRunning
		entry.OTStartTime = entry.OTRequestedAt
	} else {
		entry.CompleteAt(s.now())
	}

	if err := s.workRepo.Update(ctx, entry); err != nil {
		return work.WorkResponse{}, err
	}
	return work.NewWorkResponse(entry), nil
}

// ClearAll implements work.WorkService.
func (s *WorkServiceImpl) ClearAll(ctx context.Context) (int64, error) {
	return s.workRepo.DeleteAll(ctx)
}

func toResponses(entries []work.WorkEntry) []work.WorkResponse {
	responses := make([]work.WorkResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, work.NewWorkResponse(e))
	}
	return responses
}
