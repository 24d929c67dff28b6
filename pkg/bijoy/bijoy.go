// Package bijoy converts legacy Bijoy-encoded Bengali lines to Unicode while
// leaving everything else byte-for-byte untouched.
//
// Conversion is line-scoped on purpose: court judgments interleave English
// and Bengali freely, and feeding an English line through a Bijoy codec
// garbles it. A cheap per-line marker gate decides which lines the codec
// ever sees.
package bijoy

import "strings"

// DefaultLineThreshold is the number of marker characters a line needs
// before it is treated as Bijoy-encoded. Empirical; two markers has proven
// a reliable floor against false positives on English lines.
const DefaultLineThreshold = 2

// lineMarkers are code points present in Bijoy text and effectively absent
// from plain English. A smaller, sharper set than the document classifier
// uses; this is a fast gate, not a statistic.
const lineMarkers = "†‡¨©¯¶ÎïšŒ‰‹Š"

// Codec converts a single Bijoy-encoded string to Unicode Bengali.
// Implementations may fail per call; callers keep the original on error.
type Codec interface {
	Convert(text string) (string, error)
}

// IsBijoyLine reports whether line carries at least threshold Bijoy marker
// characters. threshold <= 0 falls back to DefaultLineThreshold.
func IsBijoyLine(line string, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultLineThreshold
	}
	n := 0
	for _, r := range line {
		if strings.ContainsRune(lineMarkers, r) {
			n++
			if n >= threshold {
				return true
			}
		}
	}
	return false
}

// Converter applies a Codec to the Bijoy lines of a document.
type Converter struct {
	codec     Codec
	threshold int
}

// NewConverter returns a Converter using codec for line conversion.
// A nil codec is valid: conversion is disabled and ConvertDocument becomes
// a no-op.
func NewConverter(codec Codec) *Converter {
	return &Converter{codec: codec, threshold: DefaultLineThreshold}
}

// WithThreshold overrides the per-line marker threshold.
func (c *Converter) WithThreshold(threshold int) *Converter {
	c.threshold = threshold
	return c
}

// Enabled reports whether a codec is configured.
func (c *Converter) Enabled() bool {
	return c != nil && c.codec != nil
}

// ConvertDocument converts every Bijoy-gated line of text to Unicode and
// reports whether any line was actually converted. Lines failing the gate
// pass through unchanged, as do lines whose conversion errors.
func (c *Converter) ConvertDocument(text string) (string, bool) {
	if !c.Enabled() {
		return text, false
	}

	lines := strings.Split(text, "\n")
	converted := 0
	for i, line := range lines {
		if !IsBijoyLine(line, c.threshold) {
			continue
		}
		out, err := c.codec.Convert(line)
		if err != nil {
			continue // keep original, non-fatal
		}
		lines[i] = out
		converted++
	}

	if converted == 0 {
		return text, false
	}
	return strings.Join(lines, "\n"), true
}
