package stt

// Result carries the transcription signals consumed by scoring
type Result struct {
	Transcript       string  `json:"transcript"`
	DetectedLanguage string  `json:"detected_language"`
	Confidence       float64 `json:"confidence"`
	LanguageMatch    bool    `json:"language_match"`
	NoSpeechDetected bool    `json:"no_speech_detected"`
	FallbackUsed     bool    `json:"fallback_used"`
	Duration         float64 `json:"duration"`
}

// verboseResponse is the structured (verbose_json) transcription
// response from the Whisper-style backend
type verboseResponse struct {
	Task     string            `json:"task"`
	Language string            `json:"language"`
	Duration float64           `json:"duration"`
	Text     string            `json:"text"`
	Segments []responseSegment `json:"segments"`
}

type responseSegment struct {
	ID           int     `json:"id"`
	Text         string  `json:"text"`
	AvgLogprob   float64 `json:"avg_logprob"`
	NoSpeechProb float64 `json:"no_speech_prob"`
}
