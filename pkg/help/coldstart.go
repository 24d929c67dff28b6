package help

const ColdstartYAML = `# case-ingest Quick Start

pipeline:
  extract: "Pull text out of the PDF (pdf reader, content-stream fallback)"
  classify: "Detect script: none, unicode, bijoy, mixed"
  convert: "Optional Bijoy to Unicode conversion (--convert-bijoy)"
  normalize: "Reflow broken lines, strip page markers"
  metadata: "Case number, type, court, district, judges, parties, dates, citations"
  catalog: "Everything recorded in a local SQLite database"

commands:
  basic_ingest: |
    case-ingest ingest --input ./judgments

  with_conversion: |
    case-ingest ingest --input ./judgments --convert-bijoy

  explicit_files: |
    case-ingest ingest --input "a.pdf,b.pdf" --workers 8

  single_file_preview: |
    case-ingest inspect ./judgments/123_State.pdf --convert-bijoy

  list_runs: |
    case-ingest db runs

  run_details: |
    case-ingest db run 5

  query_runs: |
    case-ingest db query --today
    case-ingest db query --failed

  document_details: |
    case-ingest db doc 42
    case-ingest db show 42 --file clean

key_files:
  - "case-results/processing_summary.json (last run summary)"
  - "case-results/{doc_id}/raw.txt (extracted text, also the cache)"
  - "case-results/{doc_id}/clean.txt (normalized text)"
  - "case-results/{doc_id}/metadata.json (structured metadata)"
  - "case-results/{doc_id}/metadata.yaml (same record, human-oriented)"

catalog_system:
  - "Runs and documents tracked in SQLite database"
  - "Auto-incrementing run IDs (1, 2, 3...)"
  - "Result directories keyed by doc_id: case-results/42/"
  - "Fresh raw.txt = extraction skipped on re-runs (--max-age bounds freshness)"
  - "Use 'case-ingest db runs' to list all runs"
  - "Use 'case-ingest db run <id>' for details"
  - "Use 'case-ingest db show <doc_id>' to see the metadata record"

db_commands:
  runs: "List all runs with stats"
  run_id: "Show detailed info for a run"
  docs: "List documents (--encoding filters by script verdict)"
  doc_id: "Show document profile, metadata and artifacts"
  show_id: "Cat an artifact file (--file=metadata|yaml|clean|raw)"
  query: "Filter runs (--today, --failed)"
  init: "Initialize database schema"

cache_invariants:
  - "Same PDF path = same doc_id = raw text cache hit when fresh"
  - "--force-extract ignores the cache entirely"
  - "Clean text and metadata are always recomputed from raw text"

query_examples:
  list_all_runs: 'case-ingest db runs'
  show_run_5: 'case-ingest db run 5'
  docs_in_bijoy: 'case-ingest db docs --encoding bijoy'
  doc_metadata: 'case-ingest db show 42'
  clean_text: 'case-ingest db show 42 --file clean'
  query_today: 'case-ingest db query --today'
  query_failed: 'case-ingest db query --failed'
  judges_of_doc: 'case-ingest db show 42 | yq ".judges[]"'

error_behavior:
  - "Non-PDF inputs: fail fast before extracting"
  - "Documents under 100 characters of text: skipped, not failed"
  - "Exit codes: 0=success, 1=partial failure, 2=complete failure"
`
