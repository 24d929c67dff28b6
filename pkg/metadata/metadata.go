// Package metadata extracts structured case metadata from raw judgment text.
//
// Extraction runs against the text exactly as the PDF layer produced it,
// before any Bijoy conversion: the structural labels ("Case No.", "Heard
// On:") are emitted in Latin script by the extraction libraries regardless
// of the body-text script, and conversion could disturb them.
//
// Every rule is independent and first-match-wins inside its category. A rule
// that matches nothing leaves its field unset; non-matches are never errors.
package metadata

import (
	"strings"

	"github.com/legalbuddy/case-ingest/pkg/script"
)

// CaseMetadata is the structured record extracted from a legal case
// document. Fields stay empty when no rule matched.
type CaseMetadata struct {
	CaseNumber   string            `json:"case_number,omitempty" yaml:"case_number,omitempty"`
	CaseType     string            `json:"case_type,omitempty" yaml:"case_type,omitempty"`
	District     string            `json:"district,omitempty" yaml:"district,omitempty"`
	Court        string            `json:"court,omitempty" yaml:"court,omitempty"`
	Judges       []string          `json:"judges" yaml:"judges"`
	Parties      map[string]string `json:"parties" yaml:"parties"`
	HearingDate  string            `json:"hearing_date,omitempty" yaml:"hearing_date,omitempty"`
	JudgmentDate string            `json:"judgment_date,omitempty" yaml:"judgment_date,omitempty"`
	Citations    []string          `json:"citations" yaml:"citations"`

	// Script provenance, filled in by the processing pipeline.
	HasBengali         bool           `json:"has_bengali" yaml:"has_bengali"`
	OriginalEncoding   script.Verdict `json:"original_encoding,omitempty" yaml:"original_encoding,omitempty"`
	ConvertedToUnicode bool           `json:"converted_to_unicode" yaml:"converted_to_unicode"`

	// Advisory language identification, never used by extraction rules.
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
}

// judgeHeadWindow bounds the judge-title scan; judges are listed on the
// cause-list block at the head of a judgment.
const judgeHeadWindow = 3000

const maxJudges = 5

const maxCitations = 10

// Extract applies the rule tables to rawText and returns the populated
// record. filename (the PDF stem) is only consulted as a case-number
// fallback when no in-text pattern matches.
func Extract(rawText, filename string) CaseMetadata {
	md := CaseMetadata{
		Judges:    []string{},
		Parties:   map[string]string{},
		Citations: []string{},
	}

	md.CaseNumber = extractCaseNumber(rawText, filename)
	md.CaseType = extractCaseType(rawText)
	md.Court = firstMatch(courtRules, rawText)
	md.District = firstMatch(districtRules, rawText)
	md.Judges = extractJudges(rawText)
	md.Parties = extractParties(rawText)
	md.HearingDate = firstMatch(hearingDateRules, rawText)
	md.JudgmentDate = firstMatch(judgmentDateRules, rawText)
	md.Citations = extractCitations(rawText)

	return md
}

func extractCaseNumber(text, filename string) string {
	if m := firstMatch(caseNumberRules, text); m != "" {
		return m
	}
	// Filenames in the corpus follow "<serial>_<party>_<slug>.pdf"; the
	// leading serial and party name stand in for a missing case number.
	if m := filenameCasePattern.FindString(filename); m != "" {
		return strings.TrimSuffix(m, "_")
	}
	return ""
}

func extractCaseType(text string) string {
	lower := strings.ToLower(text)
	for _, ct := range caseTypes {
		if strings.Contains(lower, strings.ToLower(ct)) {
			return ct
		}
	}
	return ""
}

func extractJudges(text string) []string {
	head := text
	if len(head) > judgeHeadWindow {
		head = head[:judgeHeadWindow]
	}

	var found []string
	for _, rule := range judgeRules {
		for _, m := range rule.re.FindAllStringSubmatch(head, -1) {
			name := strings.TrimSpace(m[rule.group])
			if name != "" {
				found = append(found, name)
			}
		}
	}
	return dedupe(found, maxJudges)
}

func extractParties(text string) map[string]string {
	parties := map[string]string{}
	if m := versusPattern.FindStringSubmatch(text); m != nil {
		parties["plaintiff"] = strings.TrimSpace(m[1])
		parties["defendant"] = strings.TrimSpace(m[2])
	}
	return parties
}

func extractCitations(text string) []string {
	var found []string
	for _, rule := range citationRules {
		for _, m := range rule.re.FindAllString(text, -1) {
			found = append(found, strings.TrimSpace(m))
		}
	}
	return dedupe(found, maxCitations)
}

// firstMatch evaluates rules in order and returns the first rule's capture,
// trimmed. Empty string means no rule matched.
func firstMatch(rules []patternRule, text string) string {
	for _, rule := range rules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[rule.group])
		}
	}
	return ""
}

// dedupe removes duplicates preserving first-occurrence order and caps the
// result at limit.
func dedupe(in []string, limit int) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}
