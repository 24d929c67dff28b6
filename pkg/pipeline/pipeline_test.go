package pipeline

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/legalbuddy/case-ingest/pkg/bijoy"
	"github.com/legalbuddy/case-ingest/pkg/script"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const englishJudgment = `IN THE SUPREME COURT OF BANGLADESH
High Court Division (Criminal Appellate Jurisdiction)
Criminal Appeal No. 45 of 2020
The State Versus Abdul Khaleque
The appellant was convicted under section 302 of the Penal Code.
The conviction was subsequently overturned on appeal.
`

func TestProcessEnglishJudgment(t *testing.T) {
	p := NewProcessor(bijoy.NewConverter(bijoy.TableCodec{}), testLogger())

	doc, err := p.Process(englishJudgment, "45_State_appeal.pdf")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if doc.ScriptVerdict != script.VerdictNone {
		t.Errorf("ScriptVerdict = %q, want none", doc.ScriptVerdict)
	}
	if doc.Metadata.HasBengali {
		t.Error("HasBengali = true for English text")
	}
	if doc.Metadata.OriginalEncoding != "" {
		t.Errorf("OriginalEncoding = %q, want unset for English text", doc.Metadata.OriginalEncoding)
	}
	if doc.Metadata.ConvertedToUnicode {
		t.Error("ConvertedToUnicode = true for English text")
	}
	if doc.Metadata.CaseNumber != "Criminal Appeal No. 45 of 2020" {
		t.Errorf("CaseNumber = %q", doc.Metadata.CaseNumber)
	}
	if doc.WordCount == 0 || doc.CharCount == 0 {
		t.Errorf("counts not populated: words=%d chars=%d", doc.WordCount, doc.CharCount)
	}
	if strings.Contains(doc.CleanText, "sub-\nsequently") {
		t.Error("CleanText still contains a hyphen-wrapped word")
	}
}

func TestProcessInsufficientText(t *testing.T) {
	p := NewProcessor(nil, testLogger())

	_, err := p.Process("Only forty characters of content here.", "short.pdf")
	if !errors.Is(err, ErrInsufficientText) {
		t.Errorf("Process() error = %v, want ErrInsufficientText", err)
	}
}

func TestProcessEmptyAfterNormalize(t *testing.T) {
	p := NewProcessor(nil, testLogger())

	// Long enough to pass the floor, but every line is droppable noise.
	raw := strings.Repeat("x\n", 60)
	_, err := p.Process(raw, "noise.pdf")
	if !errors.Is(err, ErrEmptyAfterNormalize) {
		t.Errorf("Process() error = %v, want ErrEmptyAfterNormalize", err)
	}
}

func TestProcessConvertsBijoyDocument(t *testing.T) {
	p := NewProcessor(bijoy.NewConverter(bijoy.TableCodec{}), testLogger())

	raw := strings.Repeat("Avgvi Av`vjZ n‡q ‡K\n", 10)
	doc, err := p.Process(raw, "bijoy.pdf")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if doc.ScriptVerdict != script.VerdictBijoy {
		t.Fatalf("ScriptVerdict = %q, want bijoy", doc.ScriptVerdict)
	}
	if !doc.Metadata.HasBengali {
		t.Error("HasBengali = false for Bijoy text")
	}
	if doc.Metadata.OriginalEncoding != script.VerdictBijoy {
		t.Errorf("OriginalEncoding = %q, want bijoy", doc.Metadata.OriginalEncoding)
	}
	if !doc.Metadata.ConvertedToUnicode {
		t.Error("ConvertedToUnicode = false after conversion")
	}
	if !strings.Contains(doc.CleanText, "আমার আদালত") {
		t.Errorf("CleanText missing converted Bengali: %q", doc.CleanText)
	}
	if strings.Contains(doc.CleanText, "Avgvi") {
		t.Errorf("CleanText still contains Bijoy glyphs: %q", doc.CleanText)
	}
}

func TestProcessConvertsBijoyLinesBelowDocumentThreshold(t *testing.T) {
	p := NewProcessor(bijoy.NewConverter(bijoy.TableCodec{}), testLogger())

	// One Bijoy witness-statement line inside an otherwise English judgment:
	// too few indicators for a document-level bijoy verdict, but the line
	// itself passes the marker gate and must still be converted.
	raw := englishJudgment + "g„Zz¨i ci †jvKwU †PvL †g‡j\n"
	doc, err := p.Process(raw, "45_State_appeal.pdf")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if doc.ScriptVerdict != script.VerdictNone {
		t.Fatalf("ScriptVerdict = %q, want none", doc.ScriptVerdict)
	}
	if !doc.Metadata.ConvertedToUnicode {
		t.Error("ConvertedToUnicode = false, want true for gated line")
	}
	if !strings.Contains(doc.CleanText, "মৃতূ্যর পর") {
		t.Errorf("CleanText missing converted Bengali: %q", doc.CleanText)
	}
	if !strings.Contains(doc.CleanText, "মেলে") {
		t.Errorf("CleanText missing converted Bengali: %q", doc.CleanText)
	}
	if strings.Contains(doc.CleanText, "†jvKwU") {
		t.Errorf("CleanText still contains Bijoy glyphs: %q", doc.CleanText)
	}
}

func TestProcessConversionDisabled(t *testing.T) {
	p := NewProcessor(bijoy.NewConverter(nil), testLogger())

	raw := strings.Repeat("Avgvi Av`vjZ n‡q ‡K\n", 10)
	doc, err := p.Process(raw, "bijoy.pdf")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if doc.Metadata.ConvertedToUnicode {
		t.Error("ConvertedToUnicode = true with conversion disabled")
	}
	if !strings.Contains(doc.CleanText, "Avgvi") {
		t.Errorf("CleanText lost original Bijoy glyphs: %q", doc.CleanText)
	}
	// The verdict still records what the document was.
	if doc.ScriptVerdict != script.VerdictBijoy {
		t.Errorf("ScriptVerdict = %q, want bijoy", doc.ScriptVerdict)
	}
}

func TestProcessMinRawLengthOverride(t *testing.T) {
	p := NewProcessor(nil, testLogger()).WithMinRawLength(10)

	doc, err := p.Process("Short but sufficient content line here.", "short.pdf")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if doc.CleanText == "" {
		t.Error("CleanText empty")
	}
}
