package scoring

import (
	"testing"

	"github.com/lexivox/speech-api/internal/models"
	"github.com/lexivox/speech-api/internal/services/stt"
	"github.com/lexivox/speech-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScorer() *Service {
	return NewService(config.ScoringConfig{
		PassThreshold:           0.7,
		LanguageMismatchCeiling: 0.3,
	})
}

func TestScore_NoSpeechShortCircuits(t *testing.T) {
	eval := testScorer().Score(&stt.Result{
		NoSpeechDetected: true,
		Confidence:       0,
	}, "hello world")

	assert.True(t, eval.NoSpeech)
	assert.Equal(t, 0.0, eval.Score)
	assert.False(t, eval.Passed)
	assert.Equal(t, models.ScoreLevelPoor, eval.Level)
	assert.Nil(t, eval.WordAnalysis, "no further processing after no-speech")
	assert.NotEmpty(t, eval.Suggestions)
}

func TestScore_PerfectMatchPasses(t *testing.T) {
	eval := testScorer().Score(&stt.Result{
		Transcript:    "Hello world",
		Confidence:    0.95,
		LanguageMatch: true,
	}, "hello, world!")

	assert.True(t, eval.Passed)
	assert.GreaterOrEqual(t, eval.Score, 0.9)
	assert.Equal(t, models.ScoreLevelExcellent, eval.Level)
	require.NotNil(t, eval.WordAnalysis)
	assert.Equal(t, []string{"hello", "world"}, eval.WordAnalysis.Matched)
	assert.Empty(t, eval.WordAnalysis.Missed)
	assert.NotEmpty(t, eval.Encouragement)
}

func TestScore_LanguageMismatchCapsScore(t *testing.T) {
	// A perfect transcript that would otherwise score ~0.98
	eval := testScorer().Score(&stt.Result{
		Transcript:    "hello world",
		Confidence:    0.95,
		LanguageMatch: false,
	}, "hello world")

	assert.Equal(t, 0.3, eval.Score, "language mismatch must cap the score at the ceiling")
	assert.False(t, eval.Passed)
	assert.NotEqual(t, 0.0, eval.Score, "the ceiling is a cap, not a hard zero")
}

func TestScore_LanguageMismatchBelowCeilingUnchanged(t *testing.T) {
	eval := testScorer().Score(&stt.Result{
		Transcript:    "completely different words",
		Confidence:    0.1,
		LanguageMatch: false,
	}, "hello world")

	assert.Less(t, eval.Score, 0.3)
}

func TestScore_PartialMatch(t *testing.T) {
	eval := testScorer().Score(&stt.Result{
		Transcript:    "the quick fox",
		Confidence:    0.8,
		LanguageMatch: true,
	}, "the quick brown fox")

	require.NotNil(t, eval.WordAnalysis)
	assert.Equal(t, []string{"the", "quick", "fox"}, eval.WordAnalysis.Matched)
	assert.Equal(t, []string{"brown"}, eval.WordAnalysis.Missed)
	assert.Empty(t, eval.WordAnalysis.Extra)
	assert.Contains(t, eval.Suggestions[0], "brown")
	assert.Greater(t, eval.Score, 0.5)
}

func TestScore_ExtraWordsTracked(t *testing.T) {
	eval := testScorer().Score(&stt.Result{
		Transcript:    "hello there beautiful world",
		Confidence:    0.8,
		LanguageMatch: true,
	}, "hello world")

	require.NotNil(t, eval.WordAnalysis)
	assert.ElementsMatch(t, []string{"there", "beautiful"}, eval.WordAnalysis.Extra)
	assert.Equal(t, 2, eval.WordAnalysis.MatchedCount)
}

func TestScore_RepeatedWordsMatchAsMultiset(t *testing.T) {
	eval := testScorer().Score(&stt.Result{
		Transcript:    "no no no",
		Confidence:    0.9,
		LanguageMatch: true,
	}, "no no")

	require.NotNil(t, eval.WordAnalysis)
	assert.Equal(t, 2, eval.WordAnalysis.MatchedCount)
	assert.Len(t, eval.WordAnalysis.Extra, 1)
}

func TestScore_EmptyTranscriptScoresPoor(t *testing.T) {
	eval := testScorer().Score(&stt.Result{
		Transcript:    "",
		Confidence:    0.2,
		LanguageMatch: true,
	}, "hello world")

	assert.False(t, eval.Passed)
	assert.Equal(t, models.ScoreLevelPoor, eval.Level)
}

func TestScore_FallbackResultCannotPass(t *testing.T) {
	// Even a perfect salvaged transcript at the fallback confidence
	// ceiling must stay under the pass threshold, because LanguageMatch
	// is forced false on the fallback path
	eval := testScorer().Score(&stt.Result{
		Transcript:       "hello world",
		DetectedLanguage: "unknown",
		Confidence:       0.4,
		LanguageMatch:    false,
		FallbackUsed:     true,
	}, "hello world")

	assert.False(t, eval.Passed)
	assert.LessOrEqual(t, eval.Score, 0.3)
}

func TestScore_Percentage(t *testing.T) {
	eval := testScorer().Score(&stt.Result{
		Transcript:    "hello world",
		Confidence:    1.0,
		LanguageMatch: true,
	}, "hello world")

	assert.Equal(t, 100, eval.ScorePercentage)
	assert.Equal(t, 1.0, eval.Score)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "punctuation stripped", in: "Hello, world!", want: []string{"hello", "world"}},
		{name: "apostrophes kept", in: "don't stop", want: []string{"don't", "stop"}},
		{name: "empty", in: "  ", want: []string{}},
		{name: "numbers kept", in: "room 42", want: []string{"room", "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
