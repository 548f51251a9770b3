package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Leave is a worker's request to be absent on a date. Transitions are one-way:
// pending -> accepted or pending -> rejected. A rejected leave counts as an
// unauthorised absence and costs a full day's pay in payroll.
type Leave struct {
	ID        string
	WorkerID  string
	Date      time.Time
	Reason    string
	Status    Status
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for admin listings
	WorkerName *string
}

// Decided reports whether the leave has reached a terminal state.
func (l Leave) Decided() bool {
	return l.Status != StatusPending
}
