package types

import "github.com/lexivox/speech-api/internal/services/scoring"

// Response status values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Error codes returned alongside HTTP statuses
const (
	ErrCodeAudioTooSmall            = "audio_too_small"
	ErrCodeAudioTooLarge            = "audio_too_large"
	ErrCodeNoSpeechDetected         = "no_speech_detected"
	ErrCodeTranscriptionUnavailable = "transcription_unavailable"
	ErrCodeInvalidRequest           = "invalid_request"
	ErrCodeNotFound                 = "not_found"
)

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ValidationResult summarizes the verdict for one attempt
type ValidationResult struct {
	Passed          bool    `json:"passed"`
	Score           float64 `json:"score"`
	ScorePercentage int     `json:"score_percentage"`
	Transcription   string  `json:"transcription"`
	ExpectedText    string  `json:"expected_text"`
	ScoreLevel      string  `json:"score_level"`
}

// Feedback carries learner-facing guidance for an attempt
type Feedback struct {
	Overall       string   `json:"overall"`
	Suggestions   []string `json:"suggestions,omitempty"`
	Encouragement string   `json:"encouragement,omitempty"`
}

// AttemptDetails carries diagnostic data for an attempt
type AttemptDetails struct {
	WordAnalysis     *scoring.WordAnalysis `json:"word_analysis,omitempty"`
	DetectedLanguage string                `json:"detected_language,omitempty"`
	Confidence       float64               `json:"confidence"`
	LanguageMatch    bool                  `json:"language_match"`
	FallbackUsed     bool                  `json:"fallback_used"`
}

// AttemptResponse is returned after an audio upload is evaluated
type AttemptResponse struct {
	Success    bool              `json:"success"`
	AttemptID  string            `json:"attempt_id,omitempty"`
	Error      string            `json:"error,omitempty"`
	Validation *ValidationResult `json:"validation,omitempty"`
	Feedback   *Feedback         `json:"feedback,omitempty"`
	Details    *AttemptDetails   `json:"details,omitempty"`
}

// AttemptRecord is the stored representation returned on lookup
type AttemptRecord struct {
	AttemptID        string  `json:"attempt_id"`
	LessonID         string  `json:"lesson_id"`
	StepID           string  `json:"step_id"`
	ExpectedText     string  `json:"expected_text"`
	ExpectedLanguage string  `json:"expected_language"`
	Transcript       string  `json:"transcript"`
	DetectedLanguage string  `json:"detected_language"`
	Confidence       float64 `json:"confidence"`
	LanguageMatch    bool    `json:"language_match"`
	NoSpeechDetected bool    `json:"no_speech_detected"`
	FallbackUsed     bool    `json:"fallback_used"`
	Score            float64 `json:"score"`
	Passed           bool    `json:"passed"`
	ScoreLevel       string  `json:"score_level"`
	CreatedAt        string  `json:"created_at"`
}

// AttemptListResponse wraps a lesson's attempt history
type AttemptListResponse struct {
	Status   string          `json:"status"`
	LessonID string          `json:"lesson_id"`
	Count    int             `json:"count"`
	Attempts []AttemptRecord `json:"attempts"`
}
