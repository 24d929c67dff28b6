package ingest

import (
	"github.com/legalbuddy/case-ingest/pkg/pipeline"
)

type Job struct {
	Path string
}

// Result holds the outcome of a processed job.
type Result struct {
	Path          string
	DocID         int64
	Doc           *pipeline.Document
	Method        string // reader, stream, cache
	Pages         int
	Skipped       bool
	Error         error
	ErrorType     string
	WordCounts    map[string]int
	FileSizeBytes int64
}

// ResultOutput is the structured output for a single file.
type ResultOutput struct {
	File               string `json:"file" yaml:"file"`
	DocID              int64  `json:"doc_id,omitempty" yaml:"doc_id,omitempty"`
	Status             string `json:"status" yaml:"status"`
	ScriptVerdict      string `json:"script_verdict,omitempty" yaml:"script_verdict,omitempty"`
	ConvertedToUnicode bool   `json:"converted_to_unicode,omitempty" yaml:"converted_to_unicode,omitempty"`
	Pages              int    `json:"pages,omitempty" yaml:"pages,omitempty"`
	WordCount          int    `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	Error              string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType          string `json:"error_type,omitempty" yaml:"error_type,omitempty"`
}

// BengaliStats aggregates script classification over a run.
type BengaliStats struct {
	UnicodeDocuments   int `json:"unicode_documents" yaml:"unicode_documents"`
	BijoyDocuments     int `json:"bijoy_documents" yaml:"bijoy_documents"`
	MixedDocuments     int `json:"mixed_documents" yaml:"mixed_documents"`
	NoneDocuments      int `json:"none_documents" yaml:"none_documents"`
	ConvertedDocuments int `json:"converted_documents" yaml:"converted_documents"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalFiles       int          `json:"total_files" yaml:"total_files"`
	Successful       int          `json:"successful" yaml:"successful"`
	Failed           int          `json:"failed" yaml:"failed"`
	Skipped          int          `json:"skipped" yaml:"skipped"`
	TotalTimeSeconds float64      `json:"total_time_seconds" yaml:"total_time_seconds"`
	BengaliStats     BengaliStats `json:"bengali_stats" yaml:"bengali_stats"`
	TopKeywords      []string     `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status" yaml:"status"`
	RunID   int64          `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Results []ResultOutput `json:"results" yaml:"results"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}
