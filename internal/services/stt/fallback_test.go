package stt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PrimaryPathPassesSignalsThrough(t *testing.T) {
	body := []byte(`{
		"task": "transcribe",
		"language": "spanish",
		"duration": 2.4,
		"text": "hola como estas",
		"segments": [
			{"id": 0, "text": "hola como estas", "avg_logprob": -0.1, "no_speech_prob": 0.01}
		]
	}`)

	got := Parse(body, "es")

	assert.False(t, got.FallbackUsed)
	assert.Equal(t, "hola como estas", got.Transcript)
	assert.Equal(t, "spanish", got.DetectedLanguage)
	assert.True(t, got.LanguageMatch)
	assert.False(t, got.NoSpeechDetected)
	assert.InDelta(t, 0.905, got.Confidence, 0.01)
	assert.Equal(t, 2.4, got.Duration)
}

func TestParse_PrimaryPathLanguageMismatch(t *testing.T) {
	body := []byte(`{"task":"transcribe","language":"english","duration":1.5,"text":"hello there","segments":[]}`)

	got := Parse(body, "es")

	assert.False(t, got.FallbackUsed)
	assert.False(t, got.LanguageMatch)
	assert.Equal(t, "hello there", got.Transcript)
}

func TestParse_PrimaryPathBlankTextIsNoSpeech(t *testing.T) {
	body := []byte(`{"task":"transcribe","language":"english","duration":1.2,"text":"   ","segments":[]}`)

	got := Parse(body, "en")

	assert.True(t, got.NoSpeechDetected)
	assert.Equal(t, 0.0, got.Confidence)
	assert.False(t, got.LanguageMatch)
}

func TestParse_FallbackEmptySalvage(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "empty body", body: []byte("")},
		{name: "whitespace body", body: []byte("   \n  ")},
		{name: "html error page", body: []byte("<html><body>502 Bad Gateway</body></html>")},
		{name: "json without usable text", body: []byte(`{"status":"done"}`)},
		{name: "json with blank text", body: []byte(`{"text":"   "}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.body, "en")

			assert.True(t, got.FallbackUsed)
			assert.True(t, got.NoSpeechDetected, "empty salvage must report no speech")
			assert.Equal(t, 0.0, got.Confidence)
			assert.False(t, got.LanguageMatch)
			assert.Equal(t, "unknown", got.DetectedLanguage)
		})
	}
}

func TestParse_FallbackSalvagedTextAttenuatesConfidence(t *testing.T) {
	// Structurally wrong (missing task/language) but carries text and a
	// confidence signal
	for _, c := range []float64{0.1, 0.5, 0.9, 1.0} {
		t.Run(fmt.Sprintf("confidence %.1f", c), func(t *testing.T) {
			body := []byte(fmt.Sprintf(`{"text":"hello world","confidence":%f}`, c))
			got := Parse(body, "en")

			require.True(t, got.FallbackUsed)
			assert.Equal(t, "hello world", got.Transcript)
			assert.False(t, got.NoSpeechDetected)
			assert.LessOrEqual(t, got.Confidence, c*0.5, "confidence must be attenuated to at most half the salvaged value")
			assert.LessOrEqual(t, got.Confidence, 0.4, "confidence must stay under the hard ceiling")
			assert.Less(t, got.Confidence, 0.7, "fallback confidence must stay below the pass threshold")
			assert.False(t, got.LanguageMatch, "fallback results must never report a language match")
			assert.Equal(t, "unknown", got.DetectedLanguage)
		})
	}
}

func TestParse_FallbackPlainTextBody(t *testing.T) {
	got := Parse([]byte("the quick brown fox"), "en")

	assert.True(t, got.FallbackUsed)
	assert.Equal(t, "the quick brown fox", got.Transcript)
	assert.False(t, got.LanguageMatch)
	assert.LessOrEqual(t, got.Confidence, 0.4)
}

func TestParse_FallbackAlternateTranscriptField(t *testing.T) {
	got := Parse([]byte(`{"transcript":"good morning"}`), "en")

	assert.True(t, got.FallbackUsed)
	assert.Equal(t, "good morning", got.Transcript)
}

func TestParse_FallbackIgnoresOutOfRangeConfidence(t *testing.T) {
	got := Parse([]byte(`{"text":"hi","confidence":3.5}`), "en")

	require.True(t, got.FallbackUsed)
	// Out-of-range signal is discarded for the default, then attenuated
	assert.InDelta(t, 0.25, got.Confidence, 1e-9)
}

func TestSegmentConfidence(t *testing.T) {
	tests := []struct {
		name     string
		segments []responseSegment
		want     float64
		delta    float64
	}{
		{name: "no segments", segments: nil, want: 0.5, delta: 0},
		{name: "high probability", segments: []responseSegment{{AvgLogprob: -0.05}}, want: 0.95, delta: 0.01},
		{name: "low probability", segments: []responseSegment{{AvgLogprob: -2.0}}, want: 0.135, delta: 0.01},
		{
			name:     "mean across segments",
			segments: []responseSegment{{AvgLogprob: -0.1}, {AvgLogprob: -0.3}},
			want:     0.818,
			delta:    0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, segmentConfidence(tt.segments), tt.delta+1e-9)
		})
	}
}

func TestLanguagesMatch(t *testing.T) {
	tests := []struct {
		detected string
		expected string
		want     bool
	}{
		{"english", "en", true},
		{"en", "en", true},
		{"English", "EN", true},
		{"spanish", "es", true},
		{"english", "es", false},
		{"unknown", "en", false},
		{"", "en", false},
		{"en", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.detected+"_"+tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.want, languagesMatch(tt.detected, tt.expected))
		})
	}
}
