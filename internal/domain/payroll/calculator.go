package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/advance"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/leave"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
)

// Config carries the payroll constants. DaysInMonth is a fixed divisor.
type Config struct {
	DaysInMonth        int
	StandardShiftHours float64
}

var overtimeMultiplier = decimal.NewFromFloat(1.5)

// Rates are derived from the monthly salary:
// daily = monthly / daysInMonth, hourly = daily / standardShiftHours,
// overtime = hourly * 1.5.
type Rates struct {
	Daily    decimal.Decimal
	Hourly   decimal.Decimal
	Overtime decimal.Decimal
}

func DeriveRates(monthlySalary decimal.Decimal, cfg Config) Rates {
	daily := monthlySalary.Div(decimal.NewFromInt(int64(cfg.DaysInMonth)))
	hourly := daily.Div(decimal.NewFromFloat(cfg.StandardShiftHours))
	return Rates{
		Daily:    daily,
		Hourly:   hourly,
		Overtime: hourly.Mul(overtimeMultiplier),
	}
}

// Snapshot is a computed salary breakdown. It is never persisted; callers
// recompute it on demand from the authoritative records.
type Snapshot struct {
	DailyRate    decimal.Decimal
	HourlyRate   decimal.Decimal
	OvertimeRate decimal.Decimal

	TotalRegularHours  float64
	TotalOvertimeHours float64
	TotalHours         float64

	RegularEarnings  decimal.Decimal
	OvertimeEarnings decimal.Decimal
	LeaveDeduction   decimal.Decimal
	AdvanceDeduction decimal.Decimal

	// FinalPayable may go negative (over-advancing); it is surfaced as-is.
	FinalPayable decimal.Decimal
}

// Compute aggregates the given shifts, leaves, and advances into a salary
// breakdown. The shift set decides the view: pass only approved entries for
// the authoritative figures, or every entry for the estimated view. Pure and
// idempotent: identical inputs always produce an identical snapshot.
//
// Per shift, regular hours cap at the standard shift length; overtime comes
// from the explicit OT timestamps when both are recorded, otherwise from the
// split of total hours at the threshold. A rejected leave withholds a full
// day's pay; an approved advance is deducted in full.
func Compute(w worker.Worker, shifts []work.WorkEntry, leaves []leave.Leave, advances []advance.Advance, cfg Config) Snapshot {
	rates := DeriveRates(w.MonthlySalary, cfg)

	var regularHours, overtimeHours float64
	for _, s := range shifts {
		regular, overtime := shiftHours(s, cfg.StandardShiftHours)
		regularHours += regular
		overtimeHours += overtime
	}

	rejectedLeaves := 0
	for _, l := range leaves {
		if l.Status == leave.StatusRejected {
			rejectedLeaves++
		}
	}

	advanceDeduction := decimal.Zero
	for _, a := range advances {
		if a.Status == advance.StatusApproved {
			advanceDeduction = advanceDeduction.Add(a.Amount)
		}
	}

	regularEarnings := rates.Hourly.Mul(decimal.NewFromFloat(regularHours))
	overtimeEarnings := rates.Overtime.Mul(decimal.NewFromFloat(overtimeHours))
	leaveDeduction := rates.Daily.Mul(decimal.NewFromInt(int64(rejectedLeaves)))

	finalPayable := regularEarnings.
		Add(overtimeEarnings).
		Sub(leaveDeduction).
		Sub(advanceDeduction)

	return Snapshot{
		DailyRate:          rates.Daily,
		HourlyRate:         rates.Hourly,
		OvertimeRate:       rates.Overtime,
		TotalRegularHours:  regularHours,
		TotalOvertimeHours: overtimeHours,
		TotalHours:         regularHours + overtimeHours,
		RegularEarnings:    regularEarnings,
		OvertimeEarnings:   overtimeEarnings,
		LeaveDeduction:     leaveDeduction,
		AdvanceDeduction:   advanceDeduction,
		FinalPayable:       finalPayable,
	}
}

// ApprovedOnly filters a shift collection down to admin-approved entries.
// The two payroll views (estimated vs approved) are always built from
// explicit filters like this one, never conflated.
func ApprovedOnly(shifts []work.WorkEntry) []work.WorkEntry {
	approved := make([]work.WorkEntry, 0, len(shifts))
	for _, s := range shifts {
		if s.IsApproved {
			approved = append(approved, s)
		}
	}
	return approved
}

func shiftHours(s work.WorkEntry, threshold float64) (regular, overtime float64) {
	if s.OTStartTime != nil && s.OTEndTime != nil {
		regular, _ = work.SplitRegularOvertime(s.TotalHours, threshold)
		return regular, s.OTEndTime.Sub(*s.OTStartTime).Hours()
	}
	return work.SplitRegularOvertime(s.TotalHours, threshold)
}
