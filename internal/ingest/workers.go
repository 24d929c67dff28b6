package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/legalbuddy/case-ingest/internal/common"
	"github.com/legalbuddy/case-ingest/models"
	"github.com/legalbuddy/case-ingest/pkg/analytics"
	"github.com/legalbuddy/case-ingest/pkg/artifacts"
	"github.com/legalbuddy/case-ingest/pkg/db"
	"github.com/legalbuddy/case-ingest/pkg/extract"
	"github.com/legalbuddy/case-ingest/pkg/mapreduce"
	"github.com/legalbuddy/case-ingest/pkg/pipeline"
)

// formatKeywordsAsJSON formats word counts as JSON array for database storage.
func formatKeywordsAsJSON(counts map[string]int, limit int) string {
	keywords := mapreduce.TopKeywords(counts, limit)
	jsonBytes, err := json.Marshal(keywords)
	if err != nil {
		return ""
	}
	return string(jsonBytes)
}

// formatWordCountsSorted formats word counts as sorted plain text.
// Format: "word:count\n" sorted by count descending for easy parsing.
func formatWordCountsSorted(counts map[string]int) string {
	type kv struct {
		word  string
		count int
	}

	sorted := make([]kv, 0, len(counts))
	for w, c := range counts {
		sorted = append(sorted, kv{word: w, count: c})
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].count > sorted[j].count
	})

	var sb strings.Builder
	for _, item := range sorted {
		fmt.Fprintf(&sb, "%s:%d\n", item.word, item.count)
	}
	return sb.String()
}

// extractWithTimeout bounds one extraction call. The PDF engines are not
// context-aware, so on timeout the extraction goroutine is abandoned; its
// result is dropped when it eventually returns.
func extractWithTimeout(path string, timeout time.Duration) (*extract.Result, error) {
	if timeout <= 0 {
		return extract.File(path)
	}

	type outcome struct {
		res *extract.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := extract.File(path)
		done <- outcome{res: res, err: err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-time.After(timeout):
		return nil, fmt.Errorf("extraction timed out after %s", timeout)
	}
}

func run(logger *slog.Logger, config *models.IngestConfig, manager *artifacts.Manager, proc *pipeline.Processor, forceExtract bool, database *db.DB) ([]Result, map[string]int, error) {
	a := &analytics.Analytics{}

	logger.Info("Starting concurrent extraction phase",
		"file_count", len(config.Files),
		"workers", config.WorkerCount,
		"force_extract", forceExtract,
		"convert_bijoy", config.ConvertBijoy,
		"max_age", manager.MaxAge())
	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.Files))
	results := make(chan Result, len(config.Files))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(w, logger, manager, proc, a, &wg, jobs, results, forceExtract, config.ExtractTimeout, database)
	}

	for _, path := range config.Files {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All extraction workers finished")

	allResults := make([]Result, 0, len(config.Files))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil && !result.Skipped {
			runErr = fmt.Errorf("one or more jobs failed")
		}
	}

	logger.Info("Starting MapReduce phase")
	intermediateResults := []map[string]int{}
	for _, result := range allResults {
		if result.WordCounts != nil {
			intermediateResults = append(intermediateResults, result.WordCounts)
		}
	}
	finalWordCounts := mapreduce.Reduce(intermediateResults)

	return allResults, finalWordCounts, runErr
}

func worker(id int, logger *slog.Logger, manager *artifacts.Manager, proc *pipeline.Processor, a *analytics.Analytics, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result, forceExtract bool, extractTimeout time.Duration, database *db.DB) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "file", job.Path)

		result := Result{Path: job.Path}

		data, err := os.ReadFile(job.Path)
		if err != nil {
			logger.Error("Error reading PDF", "worker_id", id, "file", job.Path, "error", err)
			result.Error = err
			result.ErrorType = "read_error"
			results <- result
			continue
		}

		var docID int64
		if database != nil {
			docID, err = database.InsertDocument(job.Path, common.ContentHash(data))
			if err != nil {
				logger.Warn("Failed to insert document to DB", "file", job.Path, "error", err)
			}
			result.DocID = docID
		}

		var rawText []byte
		var fresh bool

		if !forceExtract && docID > 0 {
			rawText, fresh, err = manager.GetRawText(docID)
			if err != nil {
				logger.Warn("Error checking artifact storage, extracting fresh", "file", job.Path, "error", err)
			}
		}

		if fresh {
			logger.Info("Raw text found in storage, using it", "worker_id", id, "file", job.Path)
			result.Method = "cache"
			result.Pages = strings.Count(string(rawText), "--- Page")
		} else {
			logger.Info("Raw text not cached or stale, extracting from PDF", "worker_id", id, "file", job.Path)
			extracted, extractErr := extractWithTimeout(job.Path, extractTimeout)
			if extractErr != nil {
				logger.Error("Error extracting text", "worker_id", id, "file", job.Path, "error", extractErr)
				result.Error = extractErr
				result.ErrorType = "extraction_error"

				if database != nil && docID > 0 {
					if dbErr := database.RecordAccess(docID, "", "extraction_error", false); dbErr != nil {
						logger.Warn("Failed to record failed access to DB", "file", job.Path, "error", dbErr)
					}
				}

				results <- result
				continue
			}
			rawText = []byte(extracted.Text)
			result.Method = extracted.Method
			result.Pages = extracted.Pages

			// Store raw text as the extraction cache
			if database != nil && docID > 0 {
				if err := manager.SetRawText(docID, rawText); err != nil {
					logger.Warn("Failed to store raw text artifact", "file", job.Path, "error", err)
				}

				rawTypeID, err := database.GetArtifactTypeID("text_raw")
				if err != nil {
					logger.Warn("Failed to get text_raw type ID", "file", job.Path, "error", err)
				} else {
					hash := common.ContentHash(rawText)
					rawPath := artifacts.GetDocArtifactPath(manager.BaseDir(), docID, artifacts.RawTextFile)
					if _, err := database.InsertArtifact(docID, rawTypeID, hash, rawPath, int64(len(rawText))); err != nil {
						logger.Warn("Failed to insert raw artifact to DB", "file", job.Path, "error", err)
					}
				}
			}
		}

		if database != nil && docID > 0 {
			if dbErr := database.RecordAccess(docID, result.Method, "", true); dbErr != nil {
				logger.Warn("Failed to record access to DB", "file", job.Path, "error", dbErr)
			}
		}

		processText(id, logger, &result, string(rawText), manager, proc, a, database)
		results <- result
	}
}

// processText runs the cleaning pipeline on raw text and persists the
// resulting artifacts.
func processText(id int, logger *slog.Logger, result *Result, rawText string, manager *artifacts.Manager, proc *pipeline.Processor, a *analytics.Analytics, database *db.DB) {
	doc, err := proc.Process(rawText, filepath.Base(result.Path))
	if err != nil {
		if errors.Is(err, pipeline.ErrInsufficientText) {
			logger.Warn("Skipping document with insufficient text", "worker_id", id, "file", result.Path, "error", err)
			result.Skipped = true
			result.Error = err
			result.ErrorType = "insufficient_text"
			return
		}
		logger.Error("Error processing text", "worker_id", id, "file", result.Path, "error", err)
		result.Error = err
		if errors.Is(err, pipeline.ErrEmptyAfterNormalize) {
			result.ErrorType = "empty_after_normalize"
		} else {
			result.ErrorType = "process_error"
		}
		return
	}
	result.Doc = doc
	result.WordCounts = mapreduce.Map(doc.CleanText, a)

	jsonData, err := json.MarshalIndent(doc.Metadata, "", "  ")
	if err != nil {
		logger.Error("Error marshalling metadata JSON", "worker_id", id, "file", result.Path, "error", err)
		result.Error = err
		result.ErrorType = "marshal_error"
		return
	}
	yamlData, err := yaml.Marshal(doc.Metadata)
	if err != nil {
		logger.Error("Error marshalling metadata YAML", "worker_id", id, "file", result.Path, "error", err)
		result.Error = err
		result.ErrorType = "marshal_error"
		return
	}
	result.FileSizeBytes = int64(len(doc.CleanText))

	if database == nil || result.DocID == 0 {
		return
	}
	docID := result.DocID

	if err := manager.SetCleanText(docID, []byte(doc.CleanText)); err != nil {
		logger.Warn("Failed to store clean text artifact", "file", result.Path, "error", err)
	}
	if err := manager.SetMetadataJSON(docID, jsonData); err != nil {
		logger.Warn("Failed to store metadata JSON artifact", "file", result.Path, "error", err)
	}
	if err := manager.SetMetadataYAML(docID, yamlData); err != nil {
		logger.Warn("Failed to store metadata YAML artifact", "file", result.Path, "error", err)
	}

	// Write full wordcount as sorted text file
	wordcountPath := filepath.Join(artifacts.GetDocDir(manager.BaseDir(), docID), "wordcount.txt")
	sortedWordcounts := formatWordCountsSorted(result.WordCounts)
	if err := os.WriteFile(wordcountPath, []byte(sortedWordcounts), 0644); err != nil {
		logger.Warn("Failed to write wordcount.txt", "file", result.Path, "error", err)
	}

	// Register derived artifacts in the database
	for _, reg := range []struct {
		typeName string
		file     string
		data     []byte
	}{
		{"text_clean", artifacts.CleanTextFile, []byte(doc.CleanText)},
		{"metadata_json", artifacts.MetadataJSONFile, jsonData},
		{"metadata_yaml", artifacts.MetadataYAMLFile, yamlData},
		{"keywords", "wordcount.txt", []byte(sortedWordcounts)},
	} {
		typeID, err := database.GetArtifactTypeID(reg.typeName)
		if err != nil {
			logger.Warn("Failed to get artifact type ID", "type", reg.typeName, "error", err)
			continue
		}
		hash := common.ContentHash(reg.data)
		path := artifacts.GetDocArtifactPath(manager.BaseDir(), docID, reg.file)
		if _, err := database.InsertArtifact(docID, typeID, hash, path, int64(len(reg.data))); err != nil {
			logger.Warn("Failed to insert artifact to DB", "type", reg.typeName, "error", err)
		}
	}

	// Update the document profile columns
	md := doc.Metadata
	profile := db.DocumentProfile{
		CaseNumber:         db.NewNullString(md.CaseNumber),
		CaseType:           db.NewNullString(md.CaseType),
		District:           db.NewNullString(md.District),
		Court:              db.NewNullString(md.Court),
		HearingDate:        db.NewNullString(md.HearingDate),
		JudgmentDate:       db.NewNullString(md.JudgmentDate),
		HasBengali:         md.HasBengali,
		OriginalEncoding:   string(md.OriginalEncoding),
		ConvertedToUnicode: md.ConvertedToUnicode,
		Language:           db.NewNullString(md.Language),
		PageCount:          result.Pages,
		WordCount:          doc.WordCount,
		CharCount:          doc.CharCount,
		UnicodeChars:       doc.ScriptStats.UnicodeChars,
		BijoyIndicators:    doc.ScriptStats.BijoyIndicators,
	}
	if err := database.UpdateDocumentProfile(docID, profile); err != nil {
		logger.Warn("Failed to update document profile", "file", result.Path, "error", err)
	}

	// Multi-valued fields go into the key-value store
	for i, judge := range md.Judges {
		if err := database.SetDocumentMetadata(docID, "judges", fmt.Sprintf("%d", i), judge); err != nil {
			logger.Warn("Failed to store judge", "file", result.Path, "error", err)
		}
	}
	for role, name := range md.Parties {
		if err := database.SetDocumentMetadata(docID, "parties", role, name); err != nil {
			logger.Warn("Failed to store party", "file", result.Path, "error", err)
		}
	}
	for i, cite := range md.Citations {
		if err := database.SetDocumentMetadata(docID, "citations", fmt.Sprintf("%d", i), cite); err != nil {
			logger.Warn("Failed to store citation", "file", result.Path, "error", err)
		}
	}
	if kw := formatKeywordsAsJSON(result.WordCounts, 25); kw != "" {
		if err := database.SetDocumentMetadata(docID, "analytics", "top_keywords", kw); err != nil {
			logger.Warn("Failed to store top keywords", "file", result.Path, "error", err)
		}
	}

	logger.Info("Worker finished processing", "worker_id", id, "file", result.Path,
		"verdict", doc.ScriptVerdict, "words", doc.WordCount)
}
