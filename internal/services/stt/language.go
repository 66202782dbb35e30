package stt

import "strings"

// languageAliases maps the full language names some backends return onto
// ISO 639-1 codes so detected and expected languages compare cleanly
var languageAliases = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"dutch":      "nl",
	"japanese":   "ja",
	"chinese":    "zh",
	"korean":     "ko",
	"russian":    "ru",
	"arabic":     "ar",
	"hindi":      "hi",
	"turkish":    "tr",
	"polish":     "pl",
	"swedish":    "sv",
}

// normalizeLanguage folds a language identifier to a lowercase ISO code
func normalizeLanguage(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if code, ok := languageAliases[l]; ok {
		return code
	}
	return l
}

// languagesMatch reports whether detected and expected identify the same
// language. Unknown or empty values never match.
func languagesMatch(detected, expected string) bool {
	d := normalizeLanguage(detected)
	e := normalizeLanguage(expected)
	if d == "" || e == "" || d == fallbackLanguage {
		return false
	}
	return d == e
}
