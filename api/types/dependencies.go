package types

import (
	"github.com/lexivox/speech-api/internal/database"
	"github.com/lexivox/speech-api/internal/services/attempts"
	"github.com/lexivox/speech-api/internal/services/scoring"
	"github.com/lexivox/speech-api/internal/services/stt"
)

// Dependencies holds all dependencies needed by API handlers
type Dependencies struct {
	// DB is the database connection
	DB *database.DB

	// Transcriber converts uploaded audio into transcription signals
	Transcriber stt.Transcriber

	// Scorer evaluates transcriptions against expected text
	Scorer scoring.Scorer

	// AttemptService persists and retrieves scored attempts
	AttemptService attempts.Service

	// MinAudioBytes is the smallest upload accepted for transcription.
	// Payloads below it are rejected before any STT call is made.
	MinAudioBytes int64
}
