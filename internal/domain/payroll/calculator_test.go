package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/advance"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/leave"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
)

var testCfg = Config{DaysInMonth: 30, StandardShiftHours: 10}

func testWorker(salary int64) worker.Worker {
	return worker.Worker{ID: "w-1", Name: "Ahmed", MonthlySalary: decimal.NewFromInt(salary)}
}

func TestDeriveRates(t *testing.T) {
	rates := DeriveRates(decimal.NewFromInt(3000), testCfg)

	assert.True(t, rates.Daily.Equal(decimal.NewFromInt(100)), "daily = %s", rates.Daily)
	assert.True(t, rates.Hourly.Equal(decimal.NewFromInt(10)), "hourly = %s", rates.Hourly)
	assert.True(t, rates.Overtime.Equal(decimal.NewFromInt(15)), "overtime = %s", rates.Overtime)
}

func TestComputeSingleShiftWithOvertime(t *testing.T) {
	shifts := []work.WorkEntry{
		{TotalHours: 12, Status: work.StatusCompleted, IsApproved: true},
	}

	snap := Compute(testWorker(3000), shifts, nil, nil, testCfg)

	assert.Equal(t, 10.0, snap.TotalRegularHours)
	assert.Equal(t, 2.0, snap.TotalOvertimeHours)
	assert.Equal(t, 12.0, snap.TotalHours)
	assert.True(t, snap.RegularEarnings.Equal(decimal.NewFromInt(100)), "regular = %s", snap.RegularEarnings)
	assert.True(t, snap.OvertimeEarnings.Equal(decimal.NewFromInt(30)), "overtime = %s", snap.OvertimeEarnings)
	assert.True(t, snap.FinalPayable.Equal(decimal.NewFromInt(130)), "final = %s", snap.FinalPayable)
}

func TestComputeDeductionsCanGoNegative(t *testing.T) {
	shifts := []work.WorkEntry{
		{TotalHours: 12, Status: work.StatusCompleted, IsApproved: true},
	}
	leaves := []leave.Leave{
		{Status: leave.StatusRejected},
	}
	advances := []advance.Advance{
		{Status: advance.StatusApproved, Amount: decimal.NewFromInt(50)},
	}

	snap := Compute(testWorker(3000), shifts, leaves, advances, testCfg)

	assert.True(t, snap.LeaveDeduction.Equal(decimal.NewFromInt(100)), "leave = %s", snap.LeaveDeduction)
	assert.True(t, snap.AdvanceDeduction.Equal(decimal.NewFromInt(50)), "advance = %s", snap.AdvanceDeduction)
	// 100 + 30 - 100 - 50
	assert.True(t, snap.FinalPayable.Equal(decimal.NewFromInt(-20)), "final = %s", snap.FinalPayable)
}

func TestComputeExplicitOvertimeSpan(t *testing.T) {
	otStart := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	otEnd := time.Date(2024, 3, 10, 21, 0, 0, 0, time.UTC)
	shifts := []work.WorkEntry{
		{TotalHours: 13, OTStartTime: &otStart, OTEndTime: &otEnd, IsApproved: true},
	}

	snap := Compute(testWorker(3000), shifts, nil, nil, testCfg)

	// the recorded span wins over the arithmetic split
	assert.Equal(t, 3.0, snap.TotalOvertimeHours)
	assert.Equal(t, 10.0, snap.TotalRegularHours)
}

func TestComputeIgnoresUndecidedRecords(t *testing.T) {
	leaves := []leave.Leave{
		{Status: leave.StatusPending},
		{Status: leave.StatusAccepted},
	}
	advances := []advance.Advance{
		{Status: advance.StatusPending, Amount: decimal.NewFromInt(500)},
		{Status: advance.StatusRejected, Amount: decimal.NewFromInt(500)},
		{Status: advance.StatusScheduled, Amount: decimal.NewFromInt(500)},
	}

	snap := Compute(testWorker(3000), nil, leaves, advances, testCfg)

	assert.True(t, snap.LeaveDeduction.IsZero(), "leave = %s", snap.LeaveDeduction)
	assert.True(t, snap.AdvanceDeduction.IsZero(), "advance = %s", snap.AdvanceDeduction)
	assert.True(t, snap.FinalPayable.IsZero(), "final = %s", snap.FinalPayable)
}

func TestComputeIdempotent(t *testing.T) {
	shifts := []work.WorkEntry{
		{TotalHours: 9.5, IsApproved: true},
		{TotalHours: 11.25, IsApproved: true},
	}
	advances := []advance.Advance{
		{Status: advance.StatusApproved, Amount: decimal.RequireFromString("123.45")},
	}

	first := Compute(testWorker(2750), shifts, nil, advances, testCfg)
	for i := 0; i < 10; i++ {
		again := Compute(testWorker(2750), shifts, nil, advances, testCfg)
		require.Equal(t, first, again)
	}
}

func TestApprovedOnly(t *testing.T) {
	shifts := []work.WorkEntry{
		{ID: "a", IsApproved: true},
		{ID: "b"},
		{ID: "c", IsApproved: true},
	}

	approved := ApprovedOnly(shifts)

	require.Len(t, approved, 2)
	assert.Equal(t, "a", approved[0].ID)
	assert.Equal(t, "c", approved[1].ID)

	assert.Empty(t, ApprovedOnly(nil))
}
