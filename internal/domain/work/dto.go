package work

import (
	"time"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/validator"
)

// SubmitWorkRequest is a manual entry for one calendar day. Submitting again
// for a date with a pending entry overwrites it; an approved entry rejects
// the submission.
type SubmitWorkRequest struct {
	WorkerID     string  `json:"worker_id"`
	Date         string  `json:"date"`       // YYYY-MM-DD
	StartTime    *string `json:"start_time"` // RFC3339
	EndTime      *string `json:"end_time"`   // RFC3339
	BreakMinutes int     `json:"break_minutes"`
	Notes        *string `json:"notes,omitempty"`
	TotalHours   float64 `json:"total_hours"`
	OTHours      float64 `json:"ot_hours"`
}

func (r *SubmitWorkRequest) Validate(now time.Time) error {
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
	} else if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else if date.After(now.UTC().Truncate(24 * time.Hour)) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must not be in the future",
		})
	}

	if r.StartTime != nil {
		if _, ok := validator.IsValidDateTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be an ISO8601 timestamp",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidDateTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be an ISO8601 timestamp",
			})
		}
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.TotalHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_hours",
			Message: "total_hours must not be negative",
		})
	}

	if r.OTHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ot_hours",
			Message: "ot_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// OTDecisionRequest is the admin decision on a pending overtime request.
type OTDecisionRequest struct {
	ID    string `json:"-"`
	Grant bool   `json:"grant"`
}

type WorkResponse struct {
	ID            string  `json:"id"`
	WorkerID      string  `json:"worker_id"`
	WorkerName    *string `json:"worker_name,omitempty"`
	Date          string  `json:"date"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	BreakMinutes  int     `json:"break_minutes"`
	Notes         *string `json:"notes,omitempty"`
	TotalHours    float64 `json:"total_hours"`
	OTHours       float64 `json:"ot_hours"`
	OTRequestedAt *string `json:"ot_requested_at,omitempty"`
	OTStartTime   *string `json:"ot_start_time,omitempty"`
	OTEndTime     *string `json:"ot_end_time,omitempty"`
	Status        string  `json:"status"`
	IsApproved    bool    `json:"is_approved"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func NewWorkResponse(e WorkEntry) WorkResponse {
	return WorkResponse{
		ID:            e.ID,
		WorkerID:      e.WorkerID,
		WorkerName:    e.WorkerName,
		Date:          e.Date.Format("2006-01-02"),
		StartTime:     timePtrToString(e.StartTime),
		EndTime:       timePtrToString(e.EndTime),
		BreakMinutes:  e.BreakMinutes,
		Notes:         e.Notes,
		TotalHours:    e.TotalHours,
		OTHours:       e.OTHours,
		OTRequestedAt: timePtrToString(e.OTRequestedAt),
		OTStartTime:   timePtrToString(e.OTStartTime),
		OTEndTime:     timePtrToString(e.OTEndTime),
		Status:        string(e.Status),
		IsApproved:    e.IsApproved,
		ApprovedAt:    timePtrToString(e.ApprovedAt),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
