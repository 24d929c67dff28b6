package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/legalbuddy/case-ingest/pkg/mapreduce"
	"github.com/legalbuddy/case-ingest/pkg/script"
)

// SummaryFileName is written into the output directory after every run.
const SummaryFileName = "processing_summary.json"

// BuildOutput assembles the run output from worker results.
func BuildOutput(results []Result, elapsed time.Duration, wordCounts map[string]int, runID int64) FinalOutput {
	stats := Stats{
		TotalFiles:       len(results),
		TotalTimeSeconds: elapsed.Seconds(),
		TopKeywords:      mapreduce.TopKeywords(wordCounts, 25),
	}

	outputs := make([]ResultOutput, 0, len(results))
	for _, r := range results {
		out := ResultOutput{
			File:  filepath.Base(r.Path),
			DocID: r.DocID,
			Pages: r.Pages,
		}

		switch {
		case r.Skipped:
			stats.Skipped++
			out.Status = "skipped"
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
		case r.Error != nil:
			stats.Failed++
			out.Status = "failed"
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
		default:
			stats.Successful++
			out.Status = "success"
			out.ScriptVerdict = string(r.Doc.ScriptVerdict)
			out.ConvertedToUnicode = r.Doc.Metadata.ConvertedToUnicode
			out.WordCount = r.Doc.WordCount

			switch r.Doc.ScriptVerdict {
			case script.VerdictUnicode:
				stats.BengaliStats.UnicodeDocuments++
			case script.VerdictBijoy:
				stats.BengaliStats.BijoyDocuments++
			case script.VerdictMixed:
				stats.BengaliStats.MixedDocuments++
			default:
				stats.BengaliStats.NoneDocuments++
			}
			if r.Doc.Metadata.ConvertedToUnicode {
				stats.BengaliStats.ConvertedDocuments++
			}
		}
		outputs = append(outputs, out)
	}

	status := "success"
	if stats.Failed > 0 {
		status = "partial_failure"
	}
	if stats.Failed > 0 && stats.Successful == 0 && stats.Skipped == 0 {
		status = "failure"
	}

	return FinalOutput{
		Status:  status,
		RunID:   runID,
		Results: outputs,
		Stats:   stats,
	}
}

// WriteSummaryFile persists the run output next to the per-document
// results.
func WriteSummaryFile(outputDir string, out FinalOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	path := filepath.Join(outputDir, SummaryFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
