package work

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testShift  = 10 * time.Hour
	testWindow = 60 * time.Second
	testMaxOT  = 4 * time.Hour
)

func TestCompleteAtRecomputesHours(t *testing.T) {
	start := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)
	entry := WorkEntry{
		StartTime: &start,
		Status:    StatusRunning,
	}

	entry.CompleteAt(start.Add(9 * time.Hour))

	assert.Equal(t, StatusCompleted, entry.Status)
	require.NotNil(t, entry.EndTime)
	assert.Equal(t, 9.0, entry.TotalHours)
	assert.Zero(t, entry.OTHours)
}

func TestCompleteAtStampsOvertimeEnd(t *testing.T) {
	start := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)
	otStart := start.Add(10 * time.Hour)
	entry := WorkEntry{
		StartTime:   &start,
		OTStartTime: &otStart,
		Status:      StatusOTRunning,
	}

	entry.CompleteAt(otStart.Add(2 * time.Hour))

	assert.Equal(t, StatusCompleted, entry.Status)
	require.NotNil(t, entry.OTEndTime)
	assert.Equal(t, 2.0, entry.OTHours)
	assert.Equal(t, 12.0, entry.TotalHours)
}

func TestApproveLocksEntry(t *testing.T) {
	now := time.Now().UTC()
	entry := WorkEntry{Status: StatusCompleted}

	entry.Approve(now)

	assert.True(t, entry.IsApproved)
	assert.Equal(t, StatusApproved, entry.Status)
	require.NotNil(t, entry.ApprovedAt)
	assert.Equal(t, now, *entry.ApprovedAt)
}

func TestAutoEndDeadlineRunning(t *testing.T) {
	start := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)
	entry := WorkEntry{StartTime: &start, Status: StatusRunning}

	deadline, ok := entry.AutoEndDeadline(testShift, testWindow, testMaxOT)

	require.True(t, ok)
	// the worker gets the full decision window after the standard shift
	assert.Equal(t, start.Add(testShift+testWindow), deadline)
}

func TestAutoEndDeadlineOTRequested(t *testing.T) {
	requested := time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC)
	entry := WorkEntry{OTRequestedAt: &requested, Status: StatusOTRequested}

	deadline, ok := entry.AutoEndDeadline(testShift, testWindow, testMaxOT)

	require.True(t, ok)
	// measured from the recorded request timestamp, not wall-clock polls
	assert.Equal(t, requested.Add(testWindow), deadline)
}

func TestAutoEndDeadlineOTRunning(t *testing.T) {
	otStart := time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC)
	entry := WorkEntry{OTStartTime: &otStart, Status: StatusOTRunning}

	deadline, ok := entry.AutoEndDeadline(testShift, testWindow, testMaxOT)

	require.True(t, ok)
	assert.Equal(t, otStart.Add(testMaxOT), deadline)
}

func TestAutoEndDeadlineTerminalStates(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusCompleted, StatusApproved} {
		entry := WorkEntry{Status: status}
		_, ok := entry.AutoEndDeadline(testShift, testWindow, testMaxOT)
		assert.False(t, ok, "status %s must not lapse", status)
	}
}

func TestSubmitWorkRequestValidate(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		req := SubmitWorkRequest{WorkerID: "w1", Date: "2024-03-10", TotalHours: 9}
		assert.NoError(t, req.Validate(now))
	})

	t.Run("future date rejected", func(t *testing.T) {
		req := SubmitWorkRequest{WorkerID: "w1", Date: "2024-03-11"}
		err := req.Validate(now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "future")
	})

	t.Run("missing date", func(t *testing.T) {
		req := SubmitWorkRequest{WorkerID: "w1"}
		assert.Error(t, req.Validate(now))
	})

	t.Run("negative break", func(t *testing.T) {
		req := SubmitWorkRequest{WorkerID: "w1", Date: "2024-03-09", BreakMinutes: -5}
		assert.Error(t, req.Validate(now))
	})
}
