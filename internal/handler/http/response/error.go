package response

import (
	"errors"
	"net/http"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/advance"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/announcement"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/auth"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/leave"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrPhoneExists):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, worker.ErrWorkerInactive):
		Forbidden(w, "Worker account is deactivated")

	// Work entry domain errors
	case errors.Is(err, work.ErrEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, work.ErrEntryApproved):
		Conflict(w, err.Error())
	case errors.Is(err, work.ErrFutureDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, work.ErrShiftAlreadyRunning):
		Conflict(w, err.Error())
	case errors.Is(err, work.ErrNoActiveShift):
		NotFound(w, err.Error())
	case errors.Is(err, work.ErrAwaitingApproval):
		Conflict(w, err.Error())
	case errors.Is(err, work.ErrShiftNotDone):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, work.ErrNoOvertimeRequest):
		Conflict(w, err.Error())
	case errors.Is(err, work.ErrAlreadyApproved):
		Conflict(w, err.Error())
	case errors.Is(err, work.ErrStillRunning):
		Conflict(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyDecided):
		Conflict(w, "Leave request already decided")

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance request not found")
	case errors.Is(err, advance.ErrAdvanceAlreadyDecided):
		Conflict(w, "Advance request already decided")

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
