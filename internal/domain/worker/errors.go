package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrPhoneExists    = errors.New("phone number already registered")
	ErrWorkerInactive = errors.New("worker account is deactivated")
)
