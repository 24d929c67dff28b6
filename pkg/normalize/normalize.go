// Package normalize reflows raw page-extracted text into paragraph prose.
//
// PDF text extraction yields hard-wrapped lines, stray page furniture and
// uneven whitespace. Normalization merges wrapped lines back into sentences
// while keeping the page markers the extraction layer inserted, so the
// cleaned text stays traceable to its source pages.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// PageMarkerPrefix starts every synthetic page-boundary line inserted by the
// extraction layer. Marker lines survive normalization as their own
// paragraphs.
const PageMarkerPrefix = "--- Page"

// Sentence-terminal punctuation, including the Bengali dari (।). A buffer
// ending in one of these is a complete sentence and starts a new paragraph.
var sentenceEnd = regexp.MustCompile(`[.:;?!।]$`)

var (
	innerSpace      = regexp.MustCompile(`\s+`)
	tripleBreak     = regexp.MustCompile(`\n{3,}`)
	spaceBeforePunc = regexp.MustCompile(`\s+([.,;:!?])`)
)

// Normalize cleans and reflows text: trims and de-noises physical lines,
// merges hard-wrapped lines into sentences, and joins the resulting
// paragraphs with blank lines. Empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = innerSpace.ReplaceAllString(line, " ")
		if len([]rune(line)) > 1 {
			lines = append(lines, line)
		}
	}

	var paragraphs []string
	var buffer string

	flush := func() {
		if buffer != "" {
			paragraphs = append(paragraphs, buffer)
			buffer = ""
		}
	}

	for _, line := range lines {
		if strings.HasPrefix(line, PageMarkerPrefix) {
			flush()
			paragraphs = append(paragraphs, line)
			continue
		}

		if buffer == "" {
			buffer = line
			continue
		}

		switch {
		case sentenceEnd.MatchString(buffer):
			flush()
			buffer = line
		case strings.HasSuffix(buffer, "-") && startsLower(line):
			// hyphenated word wrap: re-join the split word
			buffer = strings.TrimSuffix(buffer, "-") + line
		default:
			buffer += " " + line
		}
	}
	flush()

	out := strings.Join(paragraphs, "\n\n")
	out = tripleBreak.ReplaceAllString(out, "\n\n")
	out = spaceBeforePunc.ReplaceAllString(out, "$1")
	return out
}

// Stats returns the word and character counts of normalized text.
func Stats(text string) (words, chars int) {
	return len(strings.Fields(text)), len([]rune(text))
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}
