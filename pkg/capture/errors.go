package capture

import "errors"

var (
	// ErrSessionActive is returned when Start is called while a session is
	// already recording or paused
	ErrSessionActive = errors.New("a recording session is already active")

	// ErrInvalidState is returned when an operation is not valid for the
	// current session state
	ErrInvalidState = errors.New("operation not valid in current session state")

	// ErrPermissionDenied is returned when microphone permission has not
	// been granted
	ErrPermissionDenied = errors.New("microphone permission denied")

	// ErrNoOutput is returned when the recorded file cannot be found or
	// measured after stopping
	ErrNoOutput = errors.New("recorded output is missing")
)
