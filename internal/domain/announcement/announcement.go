package announcement

import (
	"context"
	"errors"
	"time"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/validator"
)

type Priority string

const (
	PriorityStandard Priority = "standard"
	PriorityHigh     Priority = "high"
)

// Announcement is a broadcast message from the admin. Never mutated,
// read-only to workers.
type Announcement struct {
	ID        string
	Content   string
	Priority  Priority
	CreatedAt time.Time
}

var ErrAnnouncementNotFound = errors.New("announcement not found")

type CreateAnnouncementRequest struct {
	Content  string `json:"content"`
	Priority string `json:"priority"` // standard | high
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if r.Priority == "" {
		r.Priority = string(PriorityStandard)
	} else if !validator.IsInSlice(r.Priority, []string{string(PriorityStandard), string(PriorityHigh)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: standard, high",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AnnouncementResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
}

func NewAnnouncementResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID,
		Content:   a.Content,
		Priority:  string(a.Priority),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	List(ctx context.Context) ([]Announcement, error)
}

type AnnouncementService interface {
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	List(ctx context.Context) ([]AnnouncementResponse, error)
}
