package scoring

import "github.com/lexivox/speech-api/internal/services/stt"

// Scorer evaluates a transcription result against the text the learner
// was asked to read
type Scorer interface {
	Score(result *stt.Result, expectedText string) *Evaluation
}
