package advance

import "errors"

// Advance domain errors
var (
	ErrAdvanceNotFound       = errors.New("advance request not found")
	ErrAdvanceAlreadyDecided = errors.New("advance request has already been decided")
)
