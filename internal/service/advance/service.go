package advance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/advance"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	workerRepo  worker.WorkerRepository
	now         func() time.Time
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, workerRepo worker.WorkerRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		workerRepo:  workerRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Request implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Request(ctx context.Context, req advance.RequestAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if !w.IsActive {
		return advance.AdvanceResponse{}, worker.ErrWorkerInactive
	}

	amount, _ := decimal.NewFromString(req.Amount)

	requestDate := s.now().Truncate(24 * time.Hour)
	if req.RequestDate != nil && *req.RequestDate != "" {
		requestDate, _ = time.Parse("2006-01-02", *req.RequestDate)
	}

	a := advance.Advance{
		WorkerID:    req.WorkerID,
		Amount:      amount,
		Reason:      req.Reason,
		RequestDate: requestDate,
		Status:      advance.StatusPending,
	}
	created, err := s.advanceRepo.Create(ctx, a)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.NewAdvanceResponse(created), nil
}

// ListByWorker implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return toResponses(advances), nil
}

// ListPending implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListPending(ctx context.Context) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(advances), nil
}

// ListDue implements advance.AdvanceService. Due advances are an admin
// worklist; disbursement itself happens outside the system.
func (s *AdvanceServiceImpl) ListDue(ctx context.Context) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.ListDue(ctx, s.now().Truncate(24*time.Hour))
	if err != nil {
		return nil, err
	}
	return toResponses(advances), nil
}

// Decide implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Decide(ctx context.Context, req advance.DecideAdvanceRequest) (advance.AdvanceResponse, error) {
	decision, err := advance.ParseDecision(req.Status, req.PaymentDate)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	a, err := s.advanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	if err := a.Apply(decision, s.now()); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if err := s.advanceRepo.Update(ctx, a); err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.NewAdvanceResponse(a), nil
}

// ClearAll implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ClearAll(ctx context.Context) (int64, error) {
	return s.advanceRepo.DeleteAll(ctx)
}

func toResponses(advances []advance.Advance) []advance.AdvanceResponse {
	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		responses = append(responses, advance.NewAdvanceResponse(a))
	}
	return responses
}
