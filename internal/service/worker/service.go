package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/database"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/repository/postgresql"
)

type WorkerServiceImpl struct {
	db         *database.DB
	workerRepo worker.WorkerRepository
	workRepo   work.WorkRepository
}

func NewWorkerService(db *database.DB, workerRepo worker.WorkerRepository, workRepo work.WorkRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		db:         db,
		workerRepo: workerRepo,
		workRepo:   workRepo,
	}
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	salary, _ := decimal.NewFromString(req.MonthlySalary)

	w := worker.Worker{
		Name:           req.Name,
		Phone:          req.Phone,
		PasswordHash:   string(hash),
		Role:           worker.RoleWorker,
		Trade:          req.Trade,
		MonthlySalary:  salary,
		IsActive:       true,
		IqamaExpiry:    parseDatePtr(req.IqamaExpiry),
		PassportExpiry: parseDatePtr(req.PassportExpiry),
	}

	created, err := s.workerRepo.Create(ctx, w)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.NewWorkerResponse(created), nil
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(w), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.NewWorkerResponse(w))
	}
	return responses, nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Phone != nil {
		w.Phone = *req.Phone
	}
	if req.Trade != nil {
		w.Trade = req.Trade
	}
	if req.MonthlySalary != nil {
		w.MonthlySalary, _ = decimal.NewFromString(*req.MonthlySalary)
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}
	if req.IqamaExpiry != nil {
		w.IqamaExpiry = parseDatePtr(req.IqamaExpiry)
	}
	if req.PassportExpiry != nil {
		w.PassportExpiry = parseDatePtr(req.PassportExpiry)
	}

	if err := s.workerRepo.Update(ctx, w); err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.NewWorkerResponse(w), nil
}

// Deactivate implements worker.WorkerService. A live shift is force-completed
// in the same transaction so a deactivated worker never keeps earning.
func (s *WorkerServiceImpl) Deactivate(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		active, err := s.workRepo.GetActiveByWorker(txCtx, id)
		if err != nil {
			return err
		}
		if active != nil {
			active.CompleteAt(time.Now().UTC())
			if err := s.workRepo.Update(txCtx, *active); err != nil {
				return err
			}
		}

		return s.workerRepo.Deactivate(txCtx, id)
	})
}

// ListExpiringDocuments implements worker.WorkerService.
func (s *WorkerServiceImpl) ListExpiringDocuments(ctx context.Context, withinDays int) ([]worker.WorkerResponse, error) {
	if withinDays <= 0 {
		withinDays = 30
	}
	cutoff := time.Now().UTC().AddDate(0, 0, withinDays)

	workers, err := s.workerRepo.ListExpiringDocuments(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.NewWorkerResponse(w))
	}
	return responses, nil
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
