package scoring

import (
	"fmt"
	"log"
	"math"
	"strings"
	"unicode"

	"github.com/lexivox/speech-api/internal/models"
	"github.com/lexivox/speech-api/internal/services/stt"
	"github.com/lexivox/speech-api/pkg/config"
)

// How much of the final score comes from word similarity versus STT
// confidence
const (
	similarityWeight = 0.6
	confidenceWeight = 0.4
)

// Service implements Scorer
type Service struct {
	passThreshold   float64
	mismatchCeiling float64
}

// NewService creates a scorer from scoring configuration
func NewService(cfg config.ScoringConfig) *Service {
	return &Service{
		passThreshold:   cfg.PassThreshold,
		mismatchCeiling: cfg.LanguageMismatchCeiling,
	}
}

// Score evaluates a transcription result against the expected text.
//
// Two trust signals gate the score before similarity matters at all:
// no-speech short-circuits to zero with no further processing, and a
// language mismatch caps the achievable score at a small non-zero
// ceiling. The ceiling is deliberately not a hard zero so legitimate
// edge cases (heavy accents confusing the detector) are not
// over-punished.
func (s *Service) Score(result *stt.Result, expectedText string) *Evaluation {
	if result.NoSpeechDetected {
		return &Evaluation{
			Score:    0,
			Passed:   false,
			Level:    models.ScoreLevelPoor,
			NoSpeech: true,
			Overall:  "We couldn't hear any speech in your recording.",
			Suggestions: []string{
				"Make sure you speak clearly into the microphone",
				"Check that your microphone is not muted",
				"Try recording in a quieter environment",
			},
		}
	}

	analysis := compareWords(expectedText, result.Transcript)
	similarity := diceCoefficient(analysis)

	score := similarity*similarityWeight + result.Confidence*confidenceWeight
	if !result.LanguageMatch && score > s.mismatchCeiling {
		log.Printf("[DEBUG] language mismatch (detected %q), capping score %.2f at %.2f",
			result.DetectedLanguage, score, s.mismatchCeiling)
		score = s.mismatchCeiling
	}
	score = clamp01(score)

	eval := &Evaluation{
		Score:           score,
		ScorePercentage: int(math.Round(score * 100)),
		Passed:          score >= s.passThreshold,
		Level:           s.level(score),
		WordAnalysis:    analysis,
	}
	s.fillFeedback(eval, analysis)
	return eval
}

func (s *Service) level(score float64) models.ScoreLevel {
	switch {
	case score >= 0.9:
		return models.ScoreLevelExcellent
	case score >= s.passThreshold:
		return models.ScoreLevelGood
	case score >= 0.45:
		return models.ScoreLevelFair
	default:
		return models.ScoreLevelPoor
	}
}

func (s *Service) fillFeedback(eval *Evaluation, analysis *WordAnalysis) {
	switch eval.Level {
	case models.ScoreLevelExcellent:
		eval.Overall = "Excellent pronunciation!"
		eval.Encouragement = "Keep up the great work."
	case models.ScoreLevelGood:
		eval.Overall = "Good job, your pronunciation is clear."
		eval.Encouragement = "A little more practice and it will be perfect."
	case models.ScoreLevelFair:
		eval.Overall = "Not bad, but there is room for improvement."
	default:
		eval.Overall = "That was hard to recognize. Let's try again."
	}

	if len(analysis.Missed) > 0 {
		missed := analysis.Missed
		if len(missed) > 5 {
			missed = missed[:5]
		}
		eval.Suggestions = append(eval.Suggestions,
			fmt.Sprintf("Practice these words: %s", strings.Join(missed, ", ")))
	}
	if len(analysis.Extra) > len(analysis.Matched) {
		eval.Suggestions = append(eval.Suggestions,
			"Try to stick to the sentence shown on screen")
	}
	if !eval.Passed && len(eval.Suggestions) == 0 {
		eval.Suggestions = append(eval.Suggestions,
			"Speak a little slower and articulate each word")
	}
}

// compareWords matches transcript words against expected words as
// multisets, preserving expected-text order in the analysis
func compareWords(expected, transcript string) *WordAnalysis {
	expectedWords := tokenize(expected)
	transcriptWords := tokenize(transcript)

	remaining := make(map[string]int, len(transcriptWords))
	for _, w := range transcriptWords {
		remaining[w]++
	}

	analysis := &WordAnalysis{
		Matched:       []string{},
		Missed:        []string{},
		Extra:         []string{},
		ExpectedCount: len(expectedWords),
	}

	for _, w := range expectedWords {
		if remaining[w] > 0 {
			remaining[w]--
			analysis.Matched = append(analysis.Matched, w)
		} else {
			analysis.Missed = append(analysis.Missed, w)
		}
	}
	for _, w := range transcriptWords {
		if remaining[w] > 0 {
			remaining[w]--
			analysis.Extra = append(analysis.Extra, w)
		}
	}
	analysis.MatchedCount = len(analysis.Matched)
	return analysis
}

// diceCoefficient computes 2*matches / (expected + transcribed)
func diceCoefficient(a *WordAnalysis) float64 {
	total := a.ExpectedCount + a.MatchedCount + len(a.Extra)
	if total == 0 {
		return 0
	}
	return 2 * float64(a.MatchedCount) / float64(total)
}

// tokenize folds case and punctuation and splits into words
func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
