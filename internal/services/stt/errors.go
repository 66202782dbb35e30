package stt

import "errors"

var (
	// ErrTranscriptionUnavailable is returned for transport-level
	// failures reaching the STT backend. Retryable; distinct from any
	// validation outcome.
	ErrTranscriptionUnavailable = errors.New("transcription backend unavailable")

	// ErrAudioTooLarge is returned when the payload exceeds the
	// backend's file size limit
	ErrAudioTooLarge = errors.New("audio payload exceeds maximum file size")
)
