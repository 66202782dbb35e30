package stt

import "context"

// Transcriber converts an uploaded audio payload into transcription
// signals for scoring. Implementations must fail closed: a degraded or
// unparseable backend response produces pessimistic signals, never an
// optimistic default.
type Transcriber interface {
	// Transcribe sends the audio to the speech-to-text backend and
	// returns the transcription result. The returned error is non-nil
	// only for transport-level failures (unreachable backend, timeout,
	// non-200 status), which are retryable and must never be confused
	// with a validation rejection.
	Transcribe(ctx context.Context, audio []byte, filename string, expectedLanguage string) (*Result, error)
}
