package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/legalbuddy/case-ingest/pkg/analytics"
	"github.com/legalbuddy/case-ingest/pkg/bijoy"
	"github.com/legalbuddy/case-ingest/pkg/extract"
	"github.com/legalbuddy/case-ingest/pkg/metadata"
	"github.com/legalbuddy/case-ingest/pkg/pipeline"
)

// Report is the structured output of an inspect invocation.
type Report struct {
	File            string                `json:"file" yaml:"file"`
	Method          string                `json:"extraction_method" yaml:"extraction_method"`
	Pages           int                   `json:"pages" yaml:"pages"`
	ScriptVerdict   string                `json:"script_verdict" yaml:"script_verdict"`
	UnicodeChars    int                   `json:"unicode_chars" yaml:"unicode_chars"`
	BijoyIndicators int                   `json:"bijoy_indicators" yaml:"bijoy_indicators"`
	WordCount       int                   `json:"word_count" yaml:"word_count"`
	CharCount       int                   `json:"char_count" yaml:"char_count"`
	Metadata        metadata.CaseMetadata `json:"metadata" yaml:"metadata"`
	TopWords        []string              `json:"top_words,omitempty" yaml:"top_words,omitempty"`
	CleanPreview    []string              `json:"clean_preview,omitempty" yaml:"clean_preview,omitempty"`
}

// InspectAction extracts and processes a single PDF without touching the
// catalog or the results directory. Meant for eyeballing one judgment
// before a batch run.
func InspectAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if c.NArg() == 0 {
		return fmt.Errorf("PDF path required\nUsage: case-ingest inspect <file.pdf>\nExample: case-ingest inspect ./judgments/123_State.pdf --convert-bijoy")
	}
	path := c.Args().First()

	res, err := extract.File(path)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	logger.Info("Extracted text", "file", path, "method", res.Method, "pages", res.Pages)

	var converter *bijoy.Converter
	if c.Bool("convert-bijoy") {
		converter = bijoy.NewConverter(bijoy.TableCodec{})
	} else {
		converter = bijoy.NewConverter(nil)
	}
	proc := pipeline.NewProcessor(converter, logger)

	doc, err := proc.Process(res.Text, filepath.Base(path))
	if err != nil {
		if errors.Is(err, pipeline.ErrInsufficientText) {
			return fmt.Errorf("document too short to process: %s", path)
		}
		return fmt.Errorf("failed to process %s: %w", path, err)
	}

	a := &analytics.Analytics{}
	report := Report{
		File:            filepath.Base(path),
		Method:          res.Method,
		Pages:           res.Pages,
		ScriptVerdict:   string(doc.ScriptVerdict),
		UnicodeChars:    doc.ScriptStats.UnicodeChars,
		BijoyIndicators: doc.ScriptStats.BijoyIndicators,
		WordCount:       doc.WordCount,
		CharCount:       doc.CharCount,
		Metadata:        doc.Metadata,
		TopWords:        a.TopNWords(doc.CleanText, 10),
		CleanPreview:    previewLines(doc.CleanText, 10),
	}

	var outputData []byte
	if strings.ToLower(c.String("format")) == "json" {
		outputData, err = json.MarshalIndent(report, "", "  ")
	} else {
		outputData, err = yaml.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(outputData))

	return nil
}

// previewLines returns the first n non-empty lines of text.
func previewLines(text string, n int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return out
}
