package advance

import (
	"time"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/validator"
)

// Decision is the admin's resolution of a pending advance. The type makes the
// paymentDate-required-iff-scheduled rule structural: a schedule decision
// cannot be built without a date, and the other two cannot carry one.
type Decision struct {
	status      Status
	paymentDate *time.Time
}

func ApproveDecision() Decision {
	return Decision{status: StatusApproved}
}

func RejectDecision() Decision {
	return Decision{status: StatusRejected}
}

func ScheduleDecision(paymentDate time.Time) Decision {
	return Decision{status: StatusScheduled, paymentDate: &paymentDate}
}

func (d Decision) Status() Status {
	return d.status
}

func (d Decision) PaymentDate() *time.Time {
	return d.paymentDate
}

// ParseDecision builds a Decision from the wire representation, enforcing the
// enumerated status set and the scheduled/paymentDate coupling.
func ParseDecision(status string, paymentDate *string) (Decision, error) {
	var errs validator.ValidationErrors

	switch Status(status) {
	case StatusApproved:
		return ApproveDecision(), nil
	case StatusRejected:
		return RejectDecision(), nil
	case StatusScheduled:
		if paymentDate == nil || validator.IsEmpty(*paymentDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_date",
				Message: "payment_date is required for scheduled status",
			})
			return Decision{}, errs
		}
		date, ok := validator.IsValidDate(*paymentDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_date",
				Message: "payment_date must be in YYYY-MM-DD format",
			})
			return Decision{}, errs
		}
		return ScheduleDecision(date), nil
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: approved, rejected, scheduled",
		})
		return Decision{}, errs
	}
}

// Apply writes the decision onto a pending advance. Deciding twice is a
// conflict, never a silent re-apply.
func (a *Advance) Apply(d Decision, at time.Time) error {
	if a.Decided() {
		return ErrAdvanceAlreadyDecided
	}
	a.Status = d.status
	a.PaymentDate = d.paymentDate
	a.DecidedAt = &at
	return nil
}
