package attempts

import "errors"

var (
	// ErrAttemptNotFound is returned when an attempt is not found
	ErrAttemptNotFound = errors.New("attempt not found")

	// ErrInvalidAttempt is returned when an attempt record is invalid
	ErrInvalidAttempt = errors.New("invalid attempt")
)
