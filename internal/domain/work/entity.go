package work

import (
	"time"
)

// Status is the lifecycle state of a single day's work entry.
//
// Manual entries go pending -> approved. Live-timer entries go
// running -> (ot_requested -> ot_running) -> completed -> approved.
type Status string

const (
	StatusPending     Status = "pending"
	StatusRunning     Status = "running"
	StatusOTRequested Status = "ot_requested"
	StatusOTRunning   Status = "ot_running"
	StatusCompleted   Status = "completed"
	StatusApproved    Status = "approved"
)

// WorkEntry is one worker's record for one calendar day.
// At most one entry exists per (worker, date).
type WorkEntry struct {
	ID            string
	WorkerID      string
	Date          time.Time // calendar day, midnight UTC
	StartTime     *time.Time
	EndTime       *time.Time
	BreakMinutes  int
	Notes         *string
	TotalHours    float64
	OTHours       float64
	OTRequestedAt *time.Time
	OTStartTime   *time.Time
	OTEndTime     *time.Time
	Status        Status
	IsApproved    bool
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for admin listings
	WorkerName *string
}

// Active reports whether the entry has a live timer going.
func (e WorkEntry) Active() bool {
	return e.Status == StatusRunning || e.Status == StatusOTRequested || e.Status == StatusOTRunning
}

// AwaitingApproval reports whether the entry sits in the admin pending queue.
func (e WorkEntry) AwaitingApproval() bool {
	return !e.IsApproved && (e.Status == StatusPending || e.Status == StatusCompleted)
}
