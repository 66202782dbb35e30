package models

import (
	"gorm.io/gorm"
)

// ScoreLevel buckets a pronunciation score for display
type ScoreLevel string

const (
	ScoreLevelExcellent ScoreLevel = "excellent"
	ScoreLevelGood      ScoreLevel = "good"
	ScoreLevelFair      ScoreLevel = "fair"
	ScoreLevelPoor      ScoreLevel = "poor"
)

// Attempt represents one scored pronunciation attempt: the uploaded
// audio's metadata, the transcription signals (including any fallback
// degradation), and the resulting score.
type Attempt struct {
	gorm.Model
	UUID             string `gorm:"uniqueIndex;not null" json:"uuid"`
	LessonID         string `gorm:"index:idx_attempts_lesson_step" json:"lesson_id"`
	StepID           string `gorm:"index:idx_attempts_lesson_step" json:"step_id"`
	ExpectedText     string `gorm:"type:text" json:"expected_text"`
	ExpectedLanguage string `json:"expected_language"`

	FileSizeBytes int64   `json:"file_size_bytes"`
	AudioDuration float64 `json:"audio_duration"`

	Transcript       string     `gorm:"type:text" json:"transcript"`
	DetectedLanguage string     `json:"detected_language"`
	Confidence       float64    `json:"confidence"`
	LanguageMatch    bool       `json:"language_match"`
	NoSpeechDetected bool       `json:"no_speech_detected"`
	FallbackUsed     bool       `json:"fallback_used"`

	Score      float64    `json:"score"`
	Passed     bool       `json:"passed"`
	ScoreLevel ScoreLevel `json:"score_level"`
}

// TableName specifies the table name for Attempt
func (Attempt) TableName() string {
	return "attempts"
}
