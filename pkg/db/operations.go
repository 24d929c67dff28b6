package db

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// InsertDocument inserts a document row for a PDF path, returning the
// doc_id. If the path is already registered, returns the existing doc_id
// and refreshes the content hash.
func (db *DB) InsertDocument(filePath, contentHash string) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT doc_id FROM documents WHERE file_path = ?", filePath).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE documents SET content_hash = ?, updated_at = CURRENT_TIMESTAMP
			WHERE doc_id = ?
		`, contentHash, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to refresh document: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing document: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO documents (file_path, filename, content_hash)
		VALUES (?, ?, ?)
	`, filePath, filepath.Base(filePath), contentHash)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	docID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}
	return docID, nil
}

// DocumentProfile carries the per-document columns written after
// processing.
type DocumentProfile struct {
	CaseNumber   sql.NullString
	CaseType     sql.NullString
	District     sql.NullString
	Court        sql.NullString
	HearingDate  sql.NullString
	JudgmentDate sql.NullString

	HasBengali         bool
	OriginalEncoding   string
	ConvertedToUnicode bool
	Language           sql.NullString

	PageCount       int
	WordCount       int
	CharCount       int
	UnicodeChars    int
	BijoyIndicators int
}

// UpdateDocumentProfile writes the processing results for a document.
func (db *DB) UpdateDocumentProfile(docID int64, p DocumentProfile) error {
	_, err := db.Exec(`
		UPDATE documents SET
			case_number = ?,
			case_type = ?,
			district = ?,
			court = ?,
			hearing_date = ?,
			judgment_date = ?,
			has_bengali = ?,
			original_encoding = ?,
			converted_to_unicode = ?,
			language = ?,
			page_count = ?,
			word_count = ?,
			char_count = ?,
			unicode_chars = ?,
			bijoy_indicators = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE doc_id = ?
	`, p.CaseNumber, p.CaseType, p.District, p.Court, p.HearingDate, p.JudgmentDate,
		p.HasBengali, p.OriginalEncoding, p.ConvertedToUnicode, p.Language,
		p.PageCount, p.WordCount, p.CharCount, p.UnicodeChars, p.BijoyIndicators,
		docID)
	if err != nil {
		return fmt.Errorf("failed to update document profile: %w", err)
	}
	return nil
}

// DocumentInfo represents one document row.
type DocumentInfo struct {
	DocID        int64
	FilePath     string
	Filename     string
	ContentHash  sql.NullString
	CaseNumber   sql.NullString
	CaseType     sql.NullString
	District     sql.NullString
	Court        sql.NullString
	HearingDate  sql.NullString
	JudgmentDate sql.NullString

	HasBengali         bool
	OriginalEncoding   sql.NullString
	ConvertedToUnicode bool
	Language           sql.NullString

	PageCount       int
	WordCount       int
	CharCount       int
	UnicodeChars    int
	BijoyIndicators int
}

const documentColumns = `doc_id, file_path, filename, content_hash,
	case_number, case_type, district, court, hearing_date, judgment_date,
	has_bengali, original_encoding, converted_to_unicode, language,
	page_count, word_count, char_count, unicode_chars, bijoy_indicators`

func scanDocument(row interface{ Scan(...any) error }) (*DocumentInfo, error) {
	var d DocumentInfo
	err := row.Scan(
		&d.DocID, &d.FilePath, &d.Filename, &d.ContentHash,
		&d.CaseNumber, &d.CaseType, &d.District, &d.Court, &d.HearingDate, &d.JudgmentDate,
		&d.HasBengali, &d.OriginalEncoding, &d.ConvertedToUnicode, &d.Language,
		&d.PageCount, &d.WordCount, &d.CharCount, &d.UnicodeChars, &d.BijoyIndicators,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDocumentByID retrieves one document row. Returns nil when missing.
func (db *DB) GetDocumentByID(docID int64) (*DocumentInfo, error) {
	row := db.QueryRow("SELECT "+documentColumns+" FROM documents WHERE doc_id = ?", docID)
	d, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return d, nil
}

// GetDocumentIDByPath returns the doc_id for a registered file path.
func (db *DB) GetDocumentIDByPath(filePath string) (int64, error) {
	var docID int64
	err := db.QueryRow("SELECT doc_id FROM documents WHERE file_path = ?", filePath).Scan(&docID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("document not found: %s", filePath)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}
	return docID, nil
}

// ListDocuments retrieves documents ordered by most recent first.
func (db *DB) ListDocuments(limit int) ([]DocumentInfo, error) {
	query := "SELECT " + documentColumns + " FROM documents ORDER BY created_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentInfo
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

// GetDocumentsByEncoding queries documents by their original encoding
// verdict, most recent first.
func (db *DB) GetDocumentsByEncoding(encoding string) ([]DocumentInfo, error) {
	rows, err := db.Query("SELECT "+documentColumns+" FROM documents WHERE original_encoding = ? ORDER BY created_at DESC", encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents by encoding: %w", err)
	}
	defer rows.Close()

	var docs []DocumentInfo
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

// RecordAccess records an extraction attempt in document_accesses.
func (db *DB) RecordAccess(docID int64, method, errorType string, success bool) error {
	_, err := db.Exec(`
		INSERT INTO document_accesses (doc_id, method, error_type, success)
		VALUES (?, ?, ?, ?)
	`, docID, method, errorType, success)
	if err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}
	return nil
}

// AccessRecord represents one extraction attempt.
type AccessRecord struct {
	AccessID   int64
	AccessedAt time.Time
	Method     sql.NullString
	ErrorType  sql.NullString
	Success    bool
}

// GetLastAccess returns the most recent access record for a document.
func (db *DB) GetLastAccess(docID int64) (*AccessRecord, error) {
	var record AccessRecord
	err := db.QueryRow(`
		SELECT access_id, accessed_at, method, error_type, success
		FROM document_accesses
		WHERE doc_id = ?
		ORDER BY accessed_at DESC, access_id DESC
		LIMIT 1
	`, docID).Scan(&record.AccessID, &record.AccessedAt, &record.Method, &record.ErrorType, &record.Success)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last access: %w", err)
	}
	return &record, nil
}

// SetDocumentMetadata sets a namespaced key-value pair for a document
// (upsert). Multi-valued fields use positional keys, e.g. judges/0.
func (db *DB) SetDocumentMetadata(docID int64, namespace, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO document_metadata (doc_id, namespace, key, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(doc_id, namespace, key) DO UPDATE SET value = excluded.value
	`, docID, namespace, key, value)
	if err != nil {
		return fmt.Errorf("failed to set document metadata: %w", err)
	}
	return nil
}

// GetDocumentMetadata returns all key-value pairs in a namespace for a
// document, ordered by key.
func (db *DB) GetDocumentMetadata(docID int64, namespace string) (map[string]string, error) {
	rows, err := db.Query(`
		SELECT key, value FROM document_metadata
		WHERE doc_id = ? AND namespace = ?
		ORDER BY key
	`, docID, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to get document metadata: %w", err)
	}
	defer rows.Close()

	kv := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}
		kv[k] = v
	}
	return kv, rows.Err()
}

// InsertArtifact inserts or updates an artifact, returning the artifact_id.
func (db *DB) InsertArtifact(docID int64, typeID int64, contentHash, filePath string, sizeBytes int64) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT artifact_id FROM artifacts WHERE doc_id = ? AND type_id = ?", docID, typeID).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE artifacts
			SET content_hash = ?, file_path = ?, size_bytes = ?
			WHERE artifact_id = ?
		`, contentHash, filePath, sizeBytes, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to update artifact: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing artifact: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO artifacts (doc_id, type_id, content_hash, file_path, size_bytes)
		VALUES (?, ?, ?, ?, ?)
	`, docID, typeID, contentHash, filePath, sizeBytes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert artifact: %w", err)
	}

	artifactID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get artifact ID: %w", err)
	}
	return artifactID, nil
}

// GetArtifactTypeID returns the type_id for a given type_name.
func (db *DB) GetArtifactTypeID(typeName string) (int64, error) {
	var typeID int64
	err := db.QueryRow("SELECT type_id FROM artifact_types WHERE type_name = ?", typeName).Scan(&typeID)
	if err != nil {
		return 0, fmt.Errorf("failed to get artifact type ID for %s: %w", typeName, err)
	}
	return typeID, nil
}

// ArtifactInfo represents artifact metadata.
type ArtifactInfo struct {
	ArtifactID  int64
	TypeName    string
	ContentHash string
	FilePath    string
	SizeBytes   int64
	CreatedAt   time.Time
}

// ListArtifacts returns all artifacts for a given document.
func (db *DB) ListArtifacts(docID int64) ([]ArtifactInfo, error) {
	rows, err := db.Query(`
		SELECT a.artifact_id, t.type_name, a.content_hash, a.file_path, a.size_bytes, a.created_at
		FROM artifacts a
		JOIN artifact_types t ON a.type_id = t.type_id
		WHERE a.doc_id = ?
		ORDER BY t.type_name
	`, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []ArtifactInfo
	for rows.Next() {
		var artifact ArtifactInfo
		err := rows.Scan(&artifact.ArtifactID, &artifact.TypeName, &artifact.ContentHash, &artifact.FilePath, &artifact.SizeBytes, &artifact.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, rows.Err()
}

// NewNullString creates a sql.NullString from a string value.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
