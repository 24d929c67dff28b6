// Package extract pulls raw text out of case PDFs.
//
// Two engines run in order: a structured reader that walks page content
// objects, and a content-stream fallback that scrapes string literals from
// the raw page streams for PDFs the reader chokes on. Court scans are
// frequently malformed, so every library call is panic-guarded; a bad page
// costs that page, not the document.
//
// Extracted text carries a "--- Page N ---" marker line before each page so
// downstream cleaning can keep page provenance.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/legalbuddy/case-ingest/pkg/normalize"
)

// ErrNoText means both engines ran and neither produced any text.
var ErrNoText = errors.New("no extractable text")

// Result is the outcome of extracting one PDF.
type Result struct {
	Text   string // page-marked raw text
	Pages  int    // pages that yielded text
	Method string // engine that produced the text: "reader" or "stream"
}

// File extracts text from the PDF at path, trying the structured reader
// first and the content-stream fallback second.
func File(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if res := readerExtract(data); res != nil {
		return res, nil
	}

	res, err := streamExtract(path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	if res == nil {
		return nil, fmt.Errorf("extract %s: %w", path, ErrNoText)
	}
	return res, nil
}

// pageMarker returns the boundary line inserted before page n.
func pageMarker(n int) string {
	return fmt.Sprintf("%s %d ---", normalize.PageMarkerPrefix, n)
}

// readerExtract walks page content objects. Returns nil when the reader
// cannot produce any text; the library panics on malformed files, so every
// call into it is guarded.
func readerExtract(data []byte) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}

	pages := 0
	func() {
		defer func() { _ = recover() }()
		pages = reader.NumPage()
	}()
	if pages <= 0 {
		return nil
	}

	var b strings.Builder
	yielded := 0
	for i := 1; i <= pages; i++ {
		func() {
			defer func() { _ = recover() }()
			page := reader.Page(i)
			if page.V.IsNull() {
				return
			}

			var pb strings.Builder
			var lastY float64
			for _, item := range page.Content().Text {
				// A jump in the Y coordinate is a new physical line.
				if pb.Len() > 0 {
					if item.Y != lastY {
						pb.WriteString("\n")
					} else {
						pb.WriteString(" ")
					}
				}
				pb.WriteString(item.S)
				lastY = item.Y
			}

			text := strings.TrimSpace(pb.String())
			if text == "" {
				return
			}
			yielded++
			b.WriteString(pageMarker(i))
			b.WriteString("\n")
			b.WriteString(text)
			b.WriteString("\n")
		}()
	}

	if yielded == 0 {
		return nil
	}
	return &Result{Text: b.String(), Pages: yielded, Method: "reader"}
}

// streamExtract dumps raw page content streams and scrapes their string
// literals. Cruder than the reader but survives files the reader rejects.
func streamExtract(path string) (*Result, error) {
	tmpDir, err := os.MkdirTemp("", "case_ingest_pdf_*")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := extractContentGuarded(path, tmpDir); err != nil {
		return nil, err
	}

	ents, err := os.ReadDir(tmpDir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	sort.Slice(ents, func(i, j int) bool { return ents[i].Name() < ents[j].Name() })

	var b strings.Builder
	page := 0
	for _, de := range ents {
		if de.IsDir() {
			continue
		}
		data, _ := os.ReadFile(filepath.Join(tmpDir, de.Name()))
		if len(data) == 0 {
			continue
		}

		text := cleanStreamText(parseStringLiterals(string(data)))
		if text == "" {
			continue
		}
		page++
		b.WriteString(pageMarker(page))
		b.WriteString("\n")
		b.WriteString(text)
		b.WriteString("\n")
	}

	if page == 0 {
		return nil, nil
	}
	return &Result{Text: b.String(), Pages: page, Method: "stream"}, nil
}

func extractContentGuarded(path, tmpDir string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("content extraction panicked: %v", r)
		}
	}()
	if err := api.ExtractContentFile(path, tmpDir, nil, nil); err != nil {
		return fmt.Errorf("extract content: %w", err)
	}
	return nil
}

// parseStringLiterals collects the text inside balanced parentheses in a PDF
// content stream, honoring backslash escapes.
func parseStringLiterals(s string) string {
	var out strings.Builder
	depth := 0
	escape := false
	in := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !in {
			if c == '(' {
				in = true
				depth = 1
			}
			continue
		}
		if escape {
			out.WriteByte(c)
			escape = false
			continue
		}
		switch c {
		case '\\':
			escape = true
		case '(':
			depth++
			out.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				in = false
				out.WriteByte(' ')
			} else {
				out.WriteByte(c)
			}
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// cleanStreamText drops non-printable runes and collapses whitespace.
// Non-ASCII printables stay: Bijoy-encoded Bengali lives above 0x7F.
func cleanStreamText(s string) string {
	kept := strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(kept), " ")
}
