package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run represents one batch ingest invocation
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	FileCount    int
	SuccessCount int
	FailedCount  int
	SkippedCount int
	ConvertBijoy bool
	OutputDir    string
}

// CreateRun creates a new run record and returns its ID
func (db *DB) CreateRun(fileCount int, convertBijoy bool, outputDir string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (file_count, convert_bijoy, output_dir)
		VALUES (?, ?, ?)
	`, fileCount, convertBijoy, outputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// InsertRunResult records a per-document result within a run
func (db *DB) InsertRunResult(runID, docID int64, status, errorType, errorMessage string, wordCount int) error {
	_, err := db.Exec(`
		INSERT INTO run_results (run_id, doc_id, status, error_type, error_message, word_count)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, doc_id) DO UPDATE SET
			status = excluded.status,
			error_type = excluded.error_type,
			error_message = excluded.error_message,
			word_count = excluded.word_count
	`, runID, docID, status, NewNullString(errorType), NewNullString(errorMessage), wordCount)
	if err != nil {
		return fmt.Errorf("failed to insert run result: %w", err)
	}
	return nil
}

// UpdateRunStats updates the outcome counters for a run
func (db *DB) UpdateRunStats(runID int64, successCount, failedCount, skippedCount int) error {
	_, err := db.Exec(`
		UPDATE runs SET success_count = ?, failed_count = ?, skipped_count = ?
		WHERE run_id = ?
	`, successCount, failedCount, skippedCount, runID)
	if err != nil {
		return fmt.Errorf("failed to update run stats: %w", err)
	}
	return nil
}

func scanRun(row interface{ Scan(...any) error }) (*Run, error) {
	var r Run
	err := row.Scan(&r.RunID, &r.CreatedAt, &r.FileCount,
		&r.SuccessCount, &r.FailedCount, &r.SkippedCount,
		&r.ConvertBijoy, &r.OutputDir)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

const runColumns = `run_id, created_at, file_count, success_count, failed_count, skipped_count, convert_bijoy, output_dir`

// GetRunByID retrieves a run by its ID. Returns nil when missing.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	row := db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY created_at DESC, run_id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// QueryRuns filters runs based on criteria
func (db *DB) QueryRuns(todayOnly, failedOnly bool) ([]Run, error) {
	query := "SELECT " + runColumns + " FROM runs WHERE 1=1"
	if todayOnly {
		query += " AND date(created_at) = date('now')"
	}
	if failedOnly {
		query += " AND failed_count > 0"
	}
	query += " ORDER BY created_at DESC, run_id DESC"

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// RunResult represents a per-document result within a run
type RunResult struct {
	ResultID     int64
	RunID        int64
	DocID        int64
	Filename     string
	Status       string
	ErrorType    sql.NullString
	ErrorMessage sql.NullString
	WordCount    sql.NullInt64
}

// GetRunResults retrieves all results for a run, joined with the document
// filename for display
func (db *DB) GetRunResults(runID int64) ([]RunResult, error) {
	rows, err := db.Query(`
		SELECT r.result_id, r.run_id, r.doc_id, d.filename,
			r.status, r.error_type, r.error_message, r.word_count
		FROM run_results r
		JOIN documents d ON r.doc_id = d.doc_id
		WHERE r.run_id = ?
		ORDER BY r.result_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run results: %w", err)
	}
	defer rows.Close()

	var results []RunResult
	for rows.Next() {
		var r RunResult
		err := rows.Scan(&r.ResultID, &r.RunID, &r.DocID, &r.Filename,
			&r.Status, &r.ErrorType, &r.ErrorMessage, &r.WordCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
