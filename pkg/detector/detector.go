// Package detector guesses the language of a title corpus so that the matching
// stop-word list can be selected.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LanguageCode is an ISO-639-1 code such as "ru" or "en".
type LanguageCode = string

var supported = map[lingua.Language]LanguageCode{
	lingua.Russian: "ru",
	lingua.English: "en",
}

// LanguageDetector wraps a lingua detector restricted to the languages that
// have a built-in stop-word list.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

// NewLanguageDetector builds a detector. Building loads language models, so
// callers should create one and reuse it.
func NewLanguageDetector() *LanguageDetector {
	languages := make([]lingua.Language, 0, len(supported))
	for lang := range supported {
		languages = append(languages, lang)
	}

	return &LanguageDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the language code of text and false when no language could be
// determined reliably.
func (d *LanguageDetector) Detect(text string) (LanguageCode, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}

	code, ok := supported[lang]
	return code, ok
}

// DetectOr returns the detected language code or fallback.
func (d *LanguageDetector) DetectOr(text string, fallback LanguageCode) LanguageCode {
	if code, ok := d.Detect(text); ok {
		return code
	}
	return fallback
}
