package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusScheduled Status = "scheduled"
)

// Advance is a worker's request for early salary disbursement. Approved
// advances are deducted from the final payable salary.
type Advance struct {
	ID          string
	WorkerID    string
	Amount      decimal.Decimal
	Reason      string
	RequestDate time.Time
	Status      Status
	PaymentDate *time.Time // set iff Status == scheduled
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for admin listings
	WorkerName *string
}

// Decided reports whether the advance has left the pending queue.
func (a Advance) Decided() bool {
	return a.Status != StatusPending
}

// Due reports whether a scheduled payment date has arrived. Due advances are
// surfaced as actionable items, never auto-paid.
func (a Advance) Due(today time.Time) bool {
	return a.Status == StatusScheduled && a.PaymentDate != nil && !a.PaymentDate.After(today)
}
