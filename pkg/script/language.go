package script

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// The detector restricts candidates to the two languages the corpus actually
// contains; lingua's accuracy drops sharply with large candidate sets.
var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Bengali).
			Build()
	})
	return detector
}

// DetectLanguage identifies the dominant natural language of text and a
// confidence in [0,1]. The result is advisory metadata only; encoding
// verdicts come from Classify, never from here. Returns ("", 0) when the
// text carries no usable signal.
func DetectLanguage(text string) (isoCode string, confidence float64) {
	if strings.TrimSpace(text) == "" {
		return "", 0
	}
	d := languageDetector()
	lang, ok := d.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}
	return strings.ToLower(lang.IsoCode639_1().String()), d.ComputeLanguageConfidence(text, lang)
}
