package db

import (
	"fmt"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/legalbuddy/case-ingest/pkg/db"
)

// ResolveDocID accepts either a numeric document ID or a file path and
// returns the document ID.
func ResolveDocID(arg string, database *dbpkg.DB) (int64, error) {
	var docID int64
	if _, err := fmt.Sscanf(arg, "%d", &docID); err == nil {
		return docID, nil
	}

	docID, err := database.GetDocumentIDByPath(arg)
	if err != nil {
		return 0, fmt.Errorf("document not found in database: %s\nNote: Only ingested documents are tracked", arg)
	}
	return docID, nil
}

// GetRunIDOrLatest returns the run ID from args, or the latest run if not provided
func GetRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		// No run ID provided, use latest
		runs, err := database.ListRuns(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest run: %w", err)
		}
		if len(runs) == 0 {
			return 0, fmt.Errorf("no runs found. Run 'case-ingest ingest --input ./judgments' first")
		}
		return runs[0].RunID, nil
	}

	// Parse provided run ID
	var runID int64
	_, err := fmt.Sscanf(c.Args().First(), "%d", &runID)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}
