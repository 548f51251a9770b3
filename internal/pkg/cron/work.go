package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/config"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
)

// WorkJobs closes shifts whose timers ran out. A running shift that was never
// ended stops earning at shift end plus the decision window; a granted
// overtime run stops at the overtime cap. The sweep derives every cutoff from
// recorded timestamps, so a restart never loses or extends a shift.
type WorkJobs struct {
	workRepo work.WorkRepository
	payroll  config.PayrollConfig
}

func NewWorkJobs(workRepo work.WorkRepository, payroll config.PayrollConfig) *WorkJobs {
	return &WorkJobs{
		workRepo: workRepo,
		payroll:  payroll,
	}
}

func (j *WorkJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_end_expired_shifts", 30*time.Second, j.AutoEndExpiredShifts)
}

func (j *WorkJobs) AutoEndExpiredShifts(ctx context.Context) error {
	entries, err := j.workRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active shifts: %w", err)
	}

	now := time.Now().UTC()
	closed := 0
	for _, entry := range entries {
		deadline, ok := entry.AutoEndDeadline(j.payroll.StandardShift(), j.payroll.OTDecisionWindow, j.payroll.MaxOTDuration)
		if !ok || now.Before(deadline) {
			continue
		}

		// End at the deadline itself, not at sweep time, so a late sweep
		// never inflates the hours.
		entry.CompleteAt(deadline)
		if err := j.workRepo.Update(ctx, entry); err != nil {
			slog.Error("Cron: Failed to auto-end shift",
				"entry_id", entry.ID,
				"worker_id", entry.WorkerID,
				"error", err)
			continue
		}
		closed++
	}

	if closed > 0 {
		slog.Info("Cron: Auto-ended expired shifts", "count", closed)
	}
	return nil
}
