// Package artifacts manages the per-document result files on disk.
//
// Every processed document owns one directory keyed by its database ID:
//
//	case-results/{doc_id}/raw.txt        extracted text, page markers intact
//	case-results/{doc_id}/clean.txt      normalized text
//	case-results/{doc_id}/metadata.json  structured metadata
//	case-results/{doc_id}/metadata.yaml  same record, human-oriented
//
// raw.txt doubles as an extraction cache: re-runs skip the PDF engines when
// a fresh copy exists.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const DefaultBaseDir = "case-results"

// Artifact filenames inside a document directory.
const (
	RawTextFile      = "raw.txt"
	CleanTextFile    = "clean.txt"
	MetadataJSONFile = "metadata.json"
	MetadataYAMLFile = "metadata.yaml"
)

// GetDocDir returns the directory for a document ID.
// Example: case-results/42/
func GetDocDir(baseDir string, docID int64) string {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return filepath.Join(baseDir, fmt.Sprintf("%d", docID))
}

// GetDocArtifactPath returns the full path for one artifact of a document.
// Example: case-results/42/raw.txt
func GetDocArtifactPath(baseDir string, docID int64, artifact string) string {
	return filepath.Join(GetDocDir(baseDir, docID), artifact)
}

// Manager handles storage and retrieval of document artifacts.
type Manager struct {
	baseDir string
	maxAge  time.Duration // staleness bound for cached raw text
}

// NewManager creates a Manager rooted at baseDir, creating it if needed.
// maxAge zero means cached raw text never goes stale; positive values bound
// its age.
func NewManager(baseDir string, maxAge time.Duration) (*Manager, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if err := os.MkdirAll(baseDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Manager{baseDir: baseDir, maxAge: maxAge}, nil
}

// BaseDir returns the root results directory.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// MaxAge returns the configured staleness bound.
func (m *Manager) MaxAge() time.Duration {
	return m.maxAge
}

// EnsureDocDir creates the directory for a document ID if it doesn't exist.
func (m *Manager) EnsureDocDir(docID int64) error {
	if err := os.MkdirAll(GetDocDir(m.baseDir, docID), 0750); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	return nil
}

// GetRawText retrieves cached raw text for a document if present and fresh.
// The second return is false when the file is missing or stale.
func (m *Manager) GetRawText(docID int64) ([]byte, bool, error) {
	filePath := GetDocArtifactPath(m.baseDir, docID, RawTextFile)

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error statting raw text: %w", err)
	}

	if m.maxAge > 0 && time.Since(info.ModTime()) > m.maxAge {
		return nil, false, nil
	}

	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, false, fmt.Errorf("error reading raw text: %w", err)
	}
	return data, true, nil
}

// SetRawText stores extracted raw text for a document.
func (m *Manager) SetRawText(docID int64, data []byte) error {
	return m.write(docID, RawTextFile, data)
}

// GetCleanText retrieves normalized text for a document. Clean text has no
// staleness bound; it is derived output, not a cache.
func (m *Manager) GetCleanText(docID int64) ([]byte, bool, error) {
	filePath := GetDocArtifactPath(m.baseDir, docID, CleanTextFile)

	data, err := os.ReadFile(filepath.Clean(filePath))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error reading clean text: %w", err)
	}
	return data, true, nil
}

// SetCleanText stores normalized text for a document.
func (m *Manager) SetCleanText(docID int64, data []byte) error {
	return m.write(docID, CleanTextFile, data)
}

// SetMetadataJSON stores the structured metadata record.
func (m *Manager) SetMetadataJSON(docID int64, data []byte) error {
	return m.write(docID, MetadataJSONFile, data)
}

// SetMetadataYAML stores the human-oriented metadata record.
func (m *Manager) SetMetadataYAML(docID int64, data []byte) error {
	return m.write(docID, MetadataYAMLFile, data)
}

func (m *Manager) write(docID int64, artifact string, data []byte) error {
	if err := m.EnsureDocDir(docID); err != nil {
		return err
	}
	filePath := GetDocArtifactPath(m.baseDir, docID, artifact)
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", artifact, err)
	}
	return nil
}
