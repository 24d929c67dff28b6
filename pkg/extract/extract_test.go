package extract

import (
	"strings"
	"testing"

	"github.com/legalbuddy/case-ingest/pkg/normalize"
)

func TestParseStringLiterals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain operators", in: "BT /F1 12 Tf (Hello) Tj (World) Tj ET", want: "Hello World "},
		{name: "escaped paren", in: `(section \(2\) of the Act) Tj`, want: "section (2) of the Act "},
		{name: "nested parens", in: "((nested)) Tj", want: "(nested) "},
		{name: "no literals", in: "BT ET q Q", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseStringLiterals(tt.in); got != tt.want {
				t.Errorf("parseStringLiterals(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanStreamTextKeepsHighBytes(t *testing.T) {
	// Bijoy-encoded glyphs sit above 0x7F and must survive cleaning.
	in := "Avgvi \x00\x01 Av`vjZ n‡q\t\t‡K"
	want := "Avgvi Av`vjZ n‡q ‡K"
	if got := cleanStreamText(in); got != want {
		t.Errorf("cleanStreamText() = %q, want %q", got, want)
	}
}

func TestPageMarkerFormat(t *testing.T) {
	m := pageMarker(3)
	if m != "--- Page 3 ---" {
		t.Errorf("pageMarker(3) = %q", m)
	}
	if !strings.HasPrefix(m, normalize.PageMarkerPrefix) {
		t.Errorf("marker %q does not carry the normalize prefix", m)
	}
}

func TestFileMissing(t *testing.T) {
	if _, err := File("testdata/does-not-exist.pdf"); err == nil {
		t.Error("File() on a missing path returned nil error")
	}
}

func TestReaderExtractGarbage(t *testing.T) {
	if res := readerExtract([]byte("not a pdf at all")); res != nil {
		t.Errorf("readerExtract(garbage) = %+v, want nil", res)
	}
}
