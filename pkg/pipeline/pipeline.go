// Package pipeline turns raw extracted case text into a cleaned, classified
// document record. The stages run in a fixed order: sufficiency check,
// script classification, metadata extraction against the raw text, optional
// Bijoy conversion, then normalization. Metadata always sees the raw text
// because conversion can disturb the Latin-script labels the rules match.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/legalbuddy/case-ingest/pkg/bijoy"
	"github.com/legalbuddy/case-ingest/pkg/metadata"
	"github.com/legalbuddy/case-ingest/pkg/normalize"
	"github.com/legalbuddy/case-ingest/pkg/script"
)

// MinRawLength is the default floor on trimmed raw-text length. Shorter
// extractions are scanned covers or blank scans, not judgments.
const MinRawLength = 100

var (
	// ErrInsufficientText marks documents whose extraction yielded too
	// little text to process.
	ErrInsufficientText = errors.New("insufficient text")

	// ErrEmptyAfterNormalize marks documents that were all noise: the raw
	// text passed the length floor but nothing survived normalization.
	ErrEmptyAfterNormalize = errors.New("no text survived normalization")
)

// Document is the processed form of one case file.
type Document struct {
	Metadata  metadata.CaseMetadata `json:"metadata" yaml:"metadata"`
	CleanText string                `json:"-" yaml:"-"`
	WordCount int                   `json:"word_count" yaml:"word_count"`
	CharCount int                   `json:"char_count" yaml:"char_count"`

	ScriptVerdict script.Verdict `json:"script_verdict" yaml:"script_verdict"`
	ScriptStats   script.Stats   `json:"script_stats" yaml:"script_stats"`
}

// Processor runs the processing stages. The zero value is not usable;
// construct with NewProcessor.
type Processor struct {
	converter    *bijoy.Converter
	logger       *slog.Logger
	minRawLength int
}

// NewProcessor returns a Processor using the given converter for Bijoy
// lines. A converter built over a nil codec disables conversion. A nil
// logger falls back to slog.Default.
func NewProcessor(converter *bijoy.Converter, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		converter:    converter,
		logger:       logger,
		minRawLength: MinRawLength,
	}
}

// WithMinRawLength overrides the raw-text length floor. Zero or negative
// restores the default.
func (p *Processor) WithMinRawLength(n int) *Processor {
	if n <= 0 {
		n = MinRawLength
	}
	p.minRawLength = n
	return p
}

// Process runs the full stage order on rawText. filename is the source PDF
// name, used for metadata fallback only. The returned error is either a
// sentinel (ErrInsufficientText, ErrEmptyAfterNormalize) or a wrapped form
// of one.
func (p *Processor) Process(rawText, filename string) (*Document, error) {
	trimmed := strings.TrimSpace(rawText)
	if n := len([]rune(trimmed)); n < p.minRawLength {
		return nil, fmt.Errorf("%w: %d chars after trimming, need %d", ErrInsufficientText, n, p.minRawLength)
	}

	hasBengali, verdict, stats := script.Classify(rawText)
	p.logger.Debug("classified script",
		"file", filename,
		"verdict", verdict,
		"unicode_chars", stats.UnicodeChars,
		"bijoy_indicators", stats.BijoyIndicators)

	md := metadata.Extract(rawText, filename)
	md.HasBengali = hasBengali
	if hasBengali {
		md.OriginalEncoding = verdict
	}

	// Conversion runs over every document; the per-line marker gate inside
	// ConvertDocument decides which lines the codec sees. Gating on the
	// document verdict would strand Bijoy lines in documents whose indicator
	// score stays under the classifier thresholds.
	text := rawText
	if p.converter.Enabled() {
		converted, didConvert := p.converter.ConvertDocument(text)
		if didConvert {
			text = converted
			md.ConvertedToUnicode = true
			p.logger.Debug("converted bijoy lines", "file", filename)
		}
	}

	clean := normalize.Normalize(text)
	if clean == "" {
		return nil, fmt.Errorf("%w: raw length %d", ErrEmptyAfterNormalize, len([]rune(trimmed)))
	}

	if iso, conf := script.DetectLanguage(clean); iso != "" {
		md.Language = iso
		md.LanguageConfidence = conf
	}

	words, chars := normalize.Stats(clean)
	return &Document{
		Metadata:      md,
		CleanText:     clean,
		WordCount:     words,
		CharCount:     chars,
		ScriptVerdict: verdict,
		ScriptStats:   stats,
	}, nil
}
