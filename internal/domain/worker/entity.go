package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

// Worker is one identity row: site workers and admins share the table,
// the worker-only compensation fields are null for admins.
type Worker struct {
	ID             string
	Name           string
	Phone          string
	PasswordHash   string
	Role           Role
	Trade          *string
	MonthlySalary  decimal.Decimal
	IsActive       bool
	IqamaExpiry    *time.Time
	PassportExpiry *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
