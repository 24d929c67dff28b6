package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;
PRAGMA mmap_size = 30000000000;

-- Documents: one row per case PDF, keyed by source path
CREATE TABLE IF NOT EXISTS documents (
    doc_id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_path TEXT NOT NULL UNIQUE,
    filename TEXT NOT NULL,
    content_hash TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Case identification
    case_number TEXT,
    case_type TEXT,
    district TEXT,
    court TEXT,
    hearing_date TEXT,
    judgment_date TEXT,

    -- Script classification
    has_bengali BOOLEAN DEFAULT 0,
    original_encoding TEXT,       -- none, unicode, bijoy, mixed
    converted_to_unicode BOOLEAN DEFAULT 0,
    language TEXT,

    -- Text profile
    page_count INTEGER DEFAULT 0,
    word_count INTEGER DEFAULT 0,
    char_count INTEGER DEFAULT 0,
    unicode_chars INTEGER DEFAULT 0,
    bijoy_indicators INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_documents_case_type ON documents(case_type);
CREATE INDEX IF NOT EXISTS idx_documents_encoding ON documents(original_encoding);
CREATE INDEX IF NOT EXISTS idx_documents_bengali ON documents(has_bengali) WHERE has_bengali = 1;
CREATE INDEX IF NOT EXISTS idx_documents_district ON documents(district);

-- Document metadata: key-value storage for multi-valued fields
-- (judges, parties, citations live here under their namespace)
CREATE TABLE IF NOT EXISTS document_metadata (
    metadata_id INTEGER PRIMARY KEY AUTOINCREMENT,
    doc_id INTEGER NOT NULL,
    namespace TEXT NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    FOREIGN KEY (doc_id) REFERENCES documents(doc_id) ON DELETE CASCADE,
    UNIQUE(doc_id, namespace, key)
);

CREATE INDEX IF NOT EXISTS idx_metadata_doc ON document_metadata(doc_id);
CREATE INDEX IF NOT EXISTS idx_metadata_namespace ON document_metadata(namespace);

-- Document accesses: every extraction attempt tracked
CREATE TABLE IF NOT EXISTS document_accesses (
    access_id INTEGER PRIMARY KEY AUTOINCREMENT,
    doc_id INTEGER NOT NULL,
    accessed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    method TEXT,                  -- reader, stream, cache
    error_type TEXT,
    success BOOLEAN NOT NULL,
    FOREIGN KEY (doc_id) REFERENCES documents(doc_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_accesses_doc ON document_accesses(doc_id);
CREATE INDEX IF NOT EXISTS idx_accesses_time ON document_accesses(accessed_at);
CREATE INDEX IF NOT EXISTS idx_accesses_success ON document_accesses(success);

-- Artifact types: lookup table for normalization
CREATE TABLE IF NOT EXISTS artifact_types (
    type_id INTEGER PRIMARY KEY AUTOINCREMENT,
    type_name TEXT NOT NULL UNIQUE,
    description TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Artifacts: content pointers (DB stores metadata, disk stores content)
CREATE TABLE IF NOT EXISTS artifacts (
    artifact_id INTEGER PRIMARY KEY AUTOINCREMENT,
    doc_id INTEGER NOT NULL,
    type_id INTEGER NOT NULL,
    content_hash TEXT NOT NULL,
    file_path TEXT NOT NULL,
    size_bytes INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (doc_id) REFERENCES documents(doc_id) ON DELETE CASCADE,
    FOREIGN KEY (type_id) REFERENCES artifact_types(type_id),
    UNIQUE(doc_id, type_id)
);

CREATE INDEX IF NOT EXISTS idx_artifacts_doc ON artifacts(doc_id);
CREATE INDEX IF NOT EXISTS idx_artifacts_type ON artifacts(type_id);
CREATE INDEX IF NOT EXISTS idx_artifacts_hash ON artifacts(content_hash);

-- Runs: tracks each batch ingest with auto-incrementing ID
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    file_count INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    skipped_count INTEGER DEFAULT 0,
    convert_bijoy BOOLEAN DEFAULT 0,
    output_dir TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

-- Run results: per-document results within a run
CREATE TABLE IF NOT EXISTS run_results (
    result_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    doc_id INTEGER NOT NULL,
    status TEXT NOT NULL,         -- success, failed, skipped
    error_type TEXT,
    error_message TEXT,
    word_count INTEGER,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    FOREIGN KEY (doc_id) REFERENCES documents(doc_id),
    UNIQUE(run_id, doc_id)
);

CREATE INDEX IF NOT EXISTS idx_run_results_run ON run_results(run_id);

-- Seed artifact types
INSERT OR IGNORE INTO artifact_types (type_name, description) VALUES
    ('text_raw', 'Extracted raw text with page markers'),
    ('text_clean', 'Normalized text'),
    ('metadata_json', 'Structured case metadata'),
    ('metadata_yaml', 'Case metadata, human-oriented'),
    ('keywords', 'Word frequency analysis');
`
