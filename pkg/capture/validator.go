package capture

import (
	"log"
	"time"
)

// RejectReason is the closed set of reasons a recording can be rejected
// by the capture-time quality gate
type RejectReason string

const (
	RejectNone         RejectReason = ""
	RejectTooShort     RejectReason = "too_short"
	RejectFileTooSmall RejectReason = "file_too_small"
	RejectTooQuiet     RejectReason = "too_quiet"
)

// Message returns the user-facing message for a rejection reason
func (r RejectReason) Message() string {
	switch r {
	case RejectTooShort:
		return "Recording was too short. Try speaking for a bit longer."
	case RejectFileTooSmall:
		return "Not enough audio was captured. Please try again."
	case RejectTooQuiet:
		return "We could barely hear you. Try speaking louder or moving closer to the microphone."
	default:
		return ""
	}
}

// QualityThresholds configures the capture-time validator. All four
// thresholds are independently tunable; the right values are deployment-
// and codec-dependent, so callers should load them from configuration
// rather than relying on the defaults.
type QualityThresholds struct {
	MinDuration         time.Duration
	MinFileSizeBytes    int64
	MinPeakAmplitude    float64
	MinAverageAmplitude float64
}

// DefaultThresholds returns the stock quality thresholds
func DefaultThresholds() QualityThresholds {
	return QualityThresholds{
		MinDuration:         500 * time.Millisecond,
		MinFileSizeBytes:    5000,
		MinPeakAmplitude:    0.02,
		MinAverageAmplitude: 0.02,
	}
}

// Outcome is the result of validating a stopped recording. Exactly one
// outcome is produced per stop attempt: either Accepted is true and
// OutputPath points at the recorded bytes, or Reason holds the single
// rejection reason.
type Outcome struct {
	Accepted   bool
	Reason     RejectReason
	OutputPath string
}

// Snapshot is the quiescent, final view of a recording session that the
// validator operates on
type Snapshot struct {
	Elapsed          time.Duration
	FileSizeBytes    int64
	PeakAmplitude    float64
	AverageAmplitude float64
	OutputPath       string
}

// Validate runs the ordered short-circuit quality checks against a final
// session snapshot. Checks run cheapest and least ambiguous first
// (duration, then file size, then peak amplitude) so that the reported
// reason is maximally specific when several thresholds are violated at
// once. The average-amplitude signal is advisory only: the scoring
// backend is the authority on pronunciation quality, so only gross
// silence is filtered here.
func Validate(snap Snapshot, t QualityThresholds) Outcome {
	if snap.Elapsed < t.MinDuration {
		return Outcome{Reason: RejectTooShort}
	}
	if snap.FileSizeBytes < t.MinFileSizeBytes {
		return Outcome{Reason: RejectFileTooSmall}
	}
	if snap.PeakAmplitude < t.MinPeakAmplitude {
		return Outcome{Reason: RejectTooQuiet}
	}
	if snap.AverageAmplitude < t.MinAverageAmplitude {
		log.Printf("[DEBUG] average amplitude %.4f below threshold %.4f, accepting anyway",
			snap.AverageAmplitude, t.MinAverageAmplitude)
	}
	return Outcome{Accepted: true, OutputPath: snap.OutputPath}
}
