package stt

import (
	"encoding/json"
	"log"
	"math"
	"strings"
)

// The fallback attenuation constants are deliberately not configuration.
// The failure mode they close is a scoring pipeline that treats "the
// structured response didn't parse" as "assume success", letting silent
// or garbage audio earn full credit. Fail closed is a hard invariant.
const (
	// fallbackLanguage is the sentinel detected-language value for
	// salvaged results; it never matches an expected language
	fallbackLanguage = "unknown"

	// fallbackConfidenceFactor scales whatever confidence signal is
	// recoverable from a degraded response
	fallbackConfidenceFactor = 0.5

	// fallbackConfidenceCeiling hard-caps fallback confidence well below
	// the downstream pass threshold (0.7)
	fallbackConfidenceCeiling = 0.4

	// defaultSalvageConfidence is assumed when a degraded response
	// carries no recoverable confidence signal at all
	defaultSalvageConfidence = 0.5
)

// Parse interprets an STT backend response body. The primary path
// decodes the structured verbose_json schema and passes its signals
// through unmodified. Any parse failure takes the fallback path, which
// salvages what it can and degrades every trust signal conservatively.
// Parse never fails: a completely unusable body becomes a
// no-speech-detected result.
func Parse(body []byte, expectedLanguage string) *Result {
	var resp verboseResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Task == "transcribe" && resp.Language != "" {
		return primaryResult(&resp, expectedLanguage)
	}

	log.Printf("[DEBUG] structured transcription parse failed, taking fallback path (%d byte body)", len(body))
	return fallbackResult(body)
}

// primaryResult maps a successfully parsed structured response onto a
// Result without any attenuation
func primaryResult(resp *verboseResponse, expectedLanguage string) *Result {
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return &Result{
			DetectedLanguage: resp.Language,
			Confidence:       0,
			LanguageMatch:    false,
			NoSpeechDetected: true,
			Duration:         resp.Duration,
		}
	}

	return &Result{
		Transcript:       text,
		DetectedLanguage: resp.Language,
		Confidence:       segmentConfidence(resp.Segments),
		LanguageMatch:    languagesMatch(resp.Language, expectedLanguage),
		Duration:         resp.Duration,
	}
}

// segmentConfidence derives a 0..1 confidence from segment log
// probabilities
func segmentConfidence(segments []responseSegment) float64 {
	if len(segments) == 0 {
		return defaultSalvageConfidence
	}
	sum := 0.0
	for _, seg := range segments {
		sum += seg.AvgLogprob
	}
	conf := math.Exp(sum / float64(len(segments)))
	if conf > 1 {
		conf = 1
	}
	if conf < 0 {
		conf = 0
	}
	return conf
}

// fallbackResult applies the conservative recovery policy to a body that
// failed the structured parse
func fallbackResult(body []byte) *Result {
	text, salvagedConfidence := salvage(body)

	if text == "" {
		return &Result{
			DetectedLanguage: fallbackLanguage,
			Confidence:       0,
			LanguageMatch:    false,
			NoSpeechDetected: true,
			FallbackUsed:     true,
		}
	}

	confidence := salvagedConfidence * fallbackConfidenceFactor
	if confidence > fallbackConfidenceCeiling {
		confidence = fallbackConfidenceCeiling
	}

	return &Result{
		Transcript:       text,
		DetectedLanguage: fallbackLanguage,
		Confidence:       confidence,
		LanguageMatch:    false,
		NoSpeechDetected: false,
		FallbackUsed:     true,
	}
}

// salvage recovers best-effort transcript text and a confidence signal
// from a degraded response body
func salvage(body []byte) (string, float64) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", 0
	}

	// A JSON body that missed the structured schema may still carry a
	// usable text field
	var loose map[string]any
	if err := json.Unmarshal(body, &loose); err == nil {
		text := ""
		if v, ok := loose["text"].(string); ok {
			text = strings.TrimSpace(v)
		} else if v, ok := loose["transcript"].(string); ok {
			text = strings.TrimSpace(v)
		}
		confidence := defaultSalvageConfidence
		if v, ok := loose["confidence"].(float64); ok && v >= 0 && v <= 1 {
			confidence = v
		}
		return text, confidence
	}

	// Not JSON at all. Plain text is usable; markup (an error page) is
	// not.
	if strings.HasPrefix(trimmed, "<") {
		return "", 0
	}
	return trimmed, defaultSalvageConfidence
}
