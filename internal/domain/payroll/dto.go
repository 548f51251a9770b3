package payroll

import (
	"context"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
)

// SnapshotResponse is the wire form of a Snapshot. Money travels as decimal
// strings, hours as numbers.
type SnapshotResponse struct {
	DailyRate    string `json:"daily_rate"`
	HourlyRate   string `json:"hourly_rate"`
	OvertimeRate string `json:"overtime_rate"`

	TotalRegularHours  float64 `json:"total_regular_hours"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
	TotalHours         float64 `json:"total_hours"`

	RegularEarnings  string `json:"regular_earnings"`
	OvertimeEarnings string `json:"overtime_earnings"`
	LeaveDeduction   string `json:"leave_deduction"`
	AdvanceDeduction string `json:"advance_deduction"`
	FinalPayable     string `json:"final_payable"`
}

func NewSnapshotResponse(s Snapshot) SnapshotResponse {
	return SnapshotResponse{
		DailyRate:          s.DailyRate.String(),
		HourlyRate:         s.HourlyRate.String(),
		OvertimeRate:       s.OvertimeRate.String(),
		TotalRegularHours:  s.TotalRegularHours,
		TotalOvertimeHours: s.TotalOvertimeHours,
		TotalHours:         s.TotalHours,
		RegularEarnings:    s.RegularEarnings.String(),
		OvertimeEarnings:   s.OvertimeEarnings.String(),
		LeaveDeduction:     s.LeaveDeduction.String(),
		AdvanceDeduction:   s.AdvanceDeduction.String(),
		FinalPayable:       s.FinalPayable.String(),
	}
}

// PayrollResponse carries both views side by side so the client never has to
// guess which shift set produced a number.
type PayrollResponse struct {
	WorkerID      string `json:"worker_id"`
	WorkerName    string `json:"worker_name"`
	MonthlySalary string `json:"monthly_salary"`

	Approved  SnapshotResponse `json:"approved"`
	Estimated SnapshotResponse `json:"estimated"`
}

func NewPayrollResponse(w worker.Worker, approved, estimated Snapshot) PayrollResponse {
	return PayrollResponse{
		WorkerID:      w.ID,
		WorkerName:    w.Name,
		MonthlySalary: w.MonthlySalary.String(),
		Approved:      NewSnapshotResponse(approved),
		Estimated:     NewSnapshotResponse(estimated),
	}
}

// PayrollService computes salary breakdowns on demand.
type PayrollService interface {
	ForWorker(ctx context.Context, workerID string) (PayrollResponse, error)
}
