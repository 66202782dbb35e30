package scoring

import "github.com/lexivox/speech-api/internal/models"

// WordAnalysis breaks a comparison down per word
type WordAnalysis struct {
	Matched       []string `json:"matched"`
	Missed        []string `json:"missed"`
	Extra         []string `json:"extra"`
	MatchedCount  int      `json:"matched_count"`
	ExpectedCount int      `json:"expected_count"`
}

// Evaluation is the scoring verdict for one pronunciation attempt
type Evaluation struct {
	Score           float64           `json:"score"`
	ScorePercentage int               `json:"score_percentage"`
	Passed          bool              `json:"passed"`
	Level           models.ScoreLevel `json:"score_level"`
	NoSpeech        bool              `json:"no_speech"`
	WordAnalysis    *WordAnalysis     `json:"word_analysis,omitempty"`
	Overall         string            `json:"overall"`
	Suggestions     []string          `json:"suggestions"`
	Encouragement   string            `json:"encouragement,omitempty"`
}
