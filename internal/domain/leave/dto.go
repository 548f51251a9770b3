package leave

import (
	"time"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Reason   string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecideLeaveRequest carries the admin decision on a pending leave.
type DecideLeaveRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"` // accepted | rejected
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusAccepted), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: accepted, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"worker_id"`
	WorkerName *string `json:"worker_name,omitempty"`
	Date       string  `json:"date"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	DecidedAt  *string `json:"decided_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	var decidedAt *string
	if l.DecidedAt != nil {
		s := l.DecidedAt.Format(time.RFC3339)
		decidedAt = &s
	}
	return LeaveResponse{
		ID:         l.ID,
		WorkerID:   l.WorkerID,
		WorkerName: l.WorkerName,
		Date:       l.Date.Format("2006-01-02"),
		Reason:     l.Reason,
		Status:     string(l.Status),
		DecidedAt:  decidedAt,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
}
