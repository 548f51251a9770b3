package work

import "errors"

// Work entry domain errors
var (
	ErrEntryNotFound = errors.New("work entry not found")

	// Submission errors
	ErrEntryApproved = errors.New("this entry is already approved, submit a new one for a different date")
	ErrFutureDate    = errors.New("work entries cannot be dated in the future")

	// Live timer errors
	ErrShiftAlreadyRunning = errors.New("a shift is already running")
	ErrNoActiveShift       = errors.New("no active shift found")
	ErrAwaitingApproval    = errors.New("previous entry is awaiting admin approval")
	ErrShiftNotDone        = errors.New("standard shift length not reached yet")
	ErrNoOvertimeRequest   = errors.New("entry has no pending overtime request")

	// Approval errors
	ErrAlreadyApproved = errors.New("work entry has already been approved")
	ErrStillRunning    = errors.New("work entry is still running and cannot be approved")
)
