package ingest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/legalbuddy/case-ingest/pkg/metadata"
	"github.com/legalbuddy/case-ingest/pkg/pipeline"
	"github.com/legalbuddy/case-ingest/pkg/script"
)

func successResult(path string, verdict script.Verdict, converted bool, words int) Result {
	return Result{
		Path:  path,
		DocID: 1,
		Pages: 2,
		Doc: &pipeline.Document{
			Metadata:      metadata.CaseMetadata{ConvertedToUnicode: converted},
			WordCount:     words,
			ScriptVerdict: verdict,
		},
	}
}

func TestBuildOutputStatusAndCounts(t *testing.T) {
	results := []Result{
		successResult("a.pdf", script.VerdictNone, false, 100),
		{Path: "b.pdf", DocID: 2, Skipped: true, Error: errors.New("too short"), ErrorType: "insufficient_text"},
		{Path: "c.pdf", DocID: 3, Error: errors.New("bad xref"), ErrorType: "extraction_error"},
	}

	out := BuildOutput(results, 2*time.Second, map[string]int{"court": 5}, 7)

	if out.Status != "partial_failure" {
		t.Errorf("Status = %q, want partial_failure", out.Status)
	}
	if out.RunID != 7 {
		t.Errorf("RunID = %d, want 7", out.RunID)
	}
	if out.Stats.TotalFiles != 3 || out.Stats.Successful != 1 || out.Stats.Failed != 1 || out.Stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 3 total / 1 success / 1 failed / 1 skipped", out.Stats)
	}
	if len(out.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(out.Results))
	}
	if out.Results[0].Status != "success" || out.Results[1].Status != "skipped" || out.Results[2].Status != "failed" {
		t.Errorf("result statuses = %s/%s/%s", out.Results[0].Status, out.Results[1].Status, out.Results[2].Status)
	}
	if out.Results[2].ErrorType != "extraction_error" {
		t.Errorf("ErrorType = %q, want extraction_error", out.Results[2].ErrorType)
	}
	if len(out.Stats.TopKeywords) == 0 {
		t.Error("expected top keywords from word counts")
	}
}

func TestBuildOutputAllFailedIsFailure(t *testing.T) {
	results := []Result{
		{Path: "a.pdf", Error: errors.New("read error"), ErrorType: "read_error"},
		{Path: "b.pdf", Error: errors.New("bad xref"), ErrorType: "extraction_error"},
	}

	out := BuildOutput(results, time.Second, nil, 1)
	if out.Status != "failure" {
		t.Errorf("Status = %q, want failure", out.Status)
	}
}

func TestBuildOutputSkippedOnlyIsSuccess(t *testing.T) {
	results := []Result{
		{Path: "a.pdf", Skipped: true, Error: errors.New("too short"), ErrorType: "insufficient_text"},
	}

	out := BuildOutput(results, time.Second, nil, 1)
	if out.Status != "success" {
		t.Errorf("Status = %q, want success", out.Status)
	}
}

func TestBuildOutputBengaliStats(t *testing.T) {
	results := []Result{
		successResult("a.pdf", script.VerdictUnicode, false, 10),
		successResult("b.pdf", script.VerdictBijoy, true, 10),
		successResult("c.pdf", script.VerdictBijoy, true, 10),
		successResult("d.pdf", script.VerdictMixed, true, 10),
		successResult("e.pdf", script.VerdictNone, false, 10),
	}

	out := BuildOutput(results, time.Second, nil, 1)

	bs := out.Stats.BengaliStats
	if bs.UnicodeDocuments != 1 {
		t.Errorf("UnicodeDocuments = %d, want 1", bs.UnicodeDocuments)
	}
	if bs.BijoyDocuments != 2 {
		t.Errorf("BijoyDocuments = %d, want 2", bs.BijoyDocuments)
	}
	if bs.MixedDocuments != 1 {
		t.Errorf("MixedDocuments = %d, want 1", bs.MixedDocuments)
	}
	if bs.NoneDocuments != 1 {
		t.Errorf("NoneDocuments = %d, want 1", bs.NoneDocuments)
	}
	if bs.ConvertedDocuments != 3 {
		t.Errorf("ConvertedDocuments = %d, want 3", bs.ConvertedDocuments)
	}
}

func TestWriteSummaryFile(t *testing.T) {
	dir := t.TempDir()

	out := BuildOutput([]Result{successResult("a.pdf", script.VerdictNone, false, 42)}, time.Second, nil, 3)
	if err := WriteSummaryFile(dir, out); err != nil {
		t.Fatalf("WriteSummaryFile failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SummaryFileName))
	if err != nil {
		t.Fatalf("failed to read summary: %v", err)
	}

	var parsed FinalOutput
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}
	if parsed.RunID != 3 {
		t.Errorf("RunID = %d, want 3", parsed.RunID)
	}
	if parsed.Stats.Successful != 1 {
		t.Errorf("Successful = %d, want 1", parsed.Stats.Successful)
	}
}
