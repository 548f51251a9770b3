package advance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/validator"
)

type RequestAdvanceRequest struct {
	WorkerID    string  `json:"worker_id"`
	Amount      string  `json:"amount"`
	Reason      string  `json:"reason"`
	RequestDate *string `json:"request_date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *RequestAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount is required",
		})
	} else if amount, err := decimal.NewFromString(r.Amount); err != nil || !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive number",
		})
	}

	if r.RequestDate != nil && *r.RequestDate != "" {
		if _, ok := validator.IsValidDate(*r.RequestDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "request_date",
				Message: "request_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecideAdvanceRequest is the wire form of an admin decision; it is parsed
// into a Decision before touching the record.
type DecideAdvanceRequest struct {
	ID          string  `json:"-"`
	Status      string  `json:"status"` // approved | rejected | scheduled
	PaymentDate *string `json:"payment_date,omitempty"`
}

type AdvanceResponse struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id"`
	WorkerName  *string `json:"worker_name,omitempty"`
	Amount      string  `json:"amount"`
	Reason      string  `json:"reason"`
	RequestDate string  `json:"request_date"`
	Status      string  `json:"status"`
	PaymentDate *string `json:"payment_date,omitempty"`
	DecidedAt   *string `json:"decided_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func NewAdvanceResponse(a Advance) AdvanceResponse {
	var paymentDate *string
	if a.PaymentDate != nil {
		s := a.PaymentDate.Format("2006-01-02")
		paymentDate = &s
	}
	var decidedAt *string
	if a.DecidedAt != nil {
		s := a.DecidedAt.Format(time.RFC3339)
		decidedAt = &s
	}
	return AdvanceResponse{
		ID:          a.ID,
		WorkerID:    a.WorkerID,
		WorkerName:  a.WorkerName,
		Amount:      a.Amount.String(),
		Reason:      a.Reason,
		RequestDate: a.RequestDate.Format("2006-01-02"),
		Status:      string(a.Status),
		PaymentDate: paymentDate,
		DecidedAt:   decidedAt,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}
