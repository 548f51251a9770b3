package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound       = errors.New("leave request not found")
	ErrLeaveAlreadyDecided = errors.New("leave request has already been decided")
)
