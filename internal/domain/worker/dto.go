package worker

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Password       string  `json:"password"`
	Trade          *string `json:"trade,omitempty"`
	MonthlySalary  string  `json:"monthly_salary"`
	IqamaExpiry    *string `json:"iqama_expiry,omitempty"`    // YYYY-MM-DD
	PassportExpiry *string `json:"passport_expiry,omitempty"` // YYYY-MM-DD
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if validator.IsEmpty(r.MonthlySalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary is required",
		})
	} else if salary, err := decimal.NewFromString(r.MonthlySalary); err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must be a non-negative number",
		})
	}

	if r.IqamaExpiry != nil && *r.IqamaExpiry != "" {
		if _, ok := validator.IsValidDate(*r.IqamaExpiry); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "iqama_expiry",
				Message: "iqama_expiry must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PassportExpiry != nil && *r.PassportExpiry != "" {
		if _, ok := validator.IsValidDate(*r.PassportExpiry); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "passport_expiry",
				Message: "passport_expiry must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateWorkerRequest is a partial admin edit; nil fields are left untouched.
type UpdateWorkerRequest struct {
	ID             string  `json:"-"`
	Name           *string `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Trade          *string `json:"trade,omitempty"`
	MonthlySalary  *string `json:"monthly_salary,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	IqamaExpiry    *string `json:"iqama_expiry,omitempty"`
	PassportExpiry *string `json:"passport_expiry,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if r.MonthlySalary != nil {
		if salary, err := decimal.NewFromString(*r.MonthlySalary); err != nil || salary.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "monthly_salary",
				Message: "monthly_salary must be a non-negative number",
			})
		}
	}

	if r.IqamaExpiry != nil && *r.IqamaExpiry != "" {
		if _, ok := validator.IsValidDate(*r.IqamaExpiry); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "iqama_expiry",
				Message: "iqama_expiry must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PassportExpiry != nil && *r.PassportExpiry != "" {
		if _, ok := validator.IsValidDate(*r.PassportExpiry); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "passport_expiry",
				Message: "passport_expiry must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Role           string  `json:"role"`
	Trade          *string `json:"trade,omitempty"`
	MonthlySalary  string  `json:"monthly_salary"`
	IsActive       bool    `json:"is_active"`
	IqamaExpiry    *string `json:"iqama_expiry,omitempty"`
	PassportExpiry *string `json:"passport_expiry,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		Phone:          w.Phone,
		Role:           string(w.Role),
		Trade:          w.Trade,
		MonthlySalary:  w.MonthlySalary.String(),
		IsActive:       w.IsActive,
		IqamaExpiry:    datePtrToString(w.IqamaExpiry),
		PassportExpiry: datePtrToString(w.PassportExpiry),
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339),
	}
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
