package payroll

import (
	"context"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/config"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/advance"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/leave"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/payroll"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
)

type PayrollServiceImpl struct {
	workerRepo  worker.WorkerRepository
	workRepo    work.WorkRepository
	leaveRepo   leave.LeaveRepository
	advanceRepo advance.AdvanceRepository
	cfg         payroll.Config
}

func NewPayrollService(
	workerRepo worker.WorkerRepository,
	workRepo work.WorkRepository,
	leaveRepo leave.LeaveRepository,
	advanceRepo advance.AdvanceRepository,
	payrollCfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		workerRepo:  workerRepo,
		workRepo:    workRepo,
		leaveRepo:   leaveRepo,
		advanceRepo: advanceRepo,
		cfg: payroll.Config{
			DaysInMonth:        payrollCfg.DaysInMonth,
			StandardShiftHours: payrollCfg.StandardShiftHours,
		},
	}
}

// ForWorker implements payroll.PayrollService. Both views are recomputed from
// the records on every call; nothing is cached or persisted.
func (s *PayrollServiceImpl) ForWorker(ctx context.Context, workerID string) (payroll.PayrollResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	shifts, err := s.workRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	leaves, err := s.leaveRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	advances, err := s.advanceRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	approved := payroll.Compute(w, payroll.ApprovedOnly(shifts), leaves, advances, s.cfg)
	estimated := payroll.Compute(w, shifts, leaves, advances, s.cfg)

	return payroll.NewPayrollResponse(w, approved, estimated), nil
}
