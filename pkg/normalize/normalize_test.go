package normalize

import (
	"strings"
	"testing"
)

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
	if got := Normalize("   \n \n\t\n"); got != "" {
		t.Errorf("Normalize(whitespace) = %q, want empty", got)
	}
}

func TestNormalizeMergesWrappedLines(t *testing.T) {
	in := "The appellant filed an appeal\nagainst the judgment of the trial\ncourt.\nThe appeal was heard.\n"
	got := Normalize(in)
	want := "The appellant filed an appeal against the judgment of the trial court.\n\nThe appeal was heard."
	if got != want {
		t.Errorf("Normalize() =\n%q\nwant\n%q", got, want)
	}
}

func TestNormalizeHyphenWrapJoin(t *testing.T) {
	in := "The conviction was sub-\nsequently overturned."
	got := Normalize(in)
	want := "The conviction was subsequently overturned."
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeHyphenBeforeUppercaseKept(t *testing.T) {
	in := "judgment of the High Court -\nDhaka Bench"
	got := Normalize(in)
	if !strings.Contains(got, "- Dhaka") {
		t.Errorf("Normalize() dropped hyphen before uppercase continuation: %q", got)
	}
}

func TestNormalizePageMarkers(t *testing.T) {
	in := "--- Page 1 ---\nFirst page text.\n--- Page 2 ---\nSecond page\ntext continues."
	got := Normalize(in)
	want := "--- Page 1 ---\n\nFirst page text.\n\n--- Page 2 ---\n\nSecond page text continues."
	if got != want {
		t.Errorf("Normalize() =\n%q\nwant\n%q", got, want)
	}
}

func TestNormalizeMarkerOnlyDocument(t *testing.T) {
	in := "--- Page 1 ---\n--- Page 2 ---\n"
	got := Normalize(in)
	want := "--- Page 1 ---\n\n--- Page 2 ---"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeDropsNoiseLines(t *testing.T) {
	in := "x\n.\nActual content line here.\n-\n"
	got := Normalize(in)
	if got != "Actual content line here." {
		t.Errorf("Normalize() = %q, want only the content line", got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	in := "Too   many\t\tspaces   here ."
	got := Normalize(in)
	want := "Too many spaces here."
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeBengaliSentenceTerminal(t *testing.T) {
	in := "আদালতের রায় বহাল থাকবে।\nপরবর্তী শুনানি হবে।"
	got := Normalize(in)
	want := "আদালতের রায় বহাল থাকবে।\n\nপরবর্তী শুনানি হবে।"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeNeverEmitsTripleBreaks(t *testing.T) {
	in := "One.\n\n\n\nTwo.\n\n\n\n\nThree."
	got := Normalize(in)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("Normalize() produced 3+ consecutive line breaks: %q", got)
	}
}

func TestNormalizeParagraphCountBounded(t *testing.T) {
	in := "Line one\nline two\nline three.\nLine four\nline five."
	lineCount := len(strings.Split(strings.TrimSpace(in), "\n"))
	got := Normalize(in)
	paragraphs := strings.Split(got, "\n\n")
	if len(paragraphs) > lineCount {
		t.Errorf("paragraph count %d exceeds input line count %d", len(paragraphs), lineCount)
	}
}

func TestStats(t *testing.T) {
	words, chars := Stats("two words")
	if words != 2 {
		t.Errorf("Stats() words = %d, want 2", words)
	}
	if chars != 9 {
		t.Errorf("Stats() chars = %d, want 9", chars)
	}
}
