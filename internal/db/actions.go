package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/legalbuddy/case-ingest/pkg/artifacts"
	dbpkg "github.com/legalbuddy/case-ingest/pkg/db"
)

func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	if c.String("db") != "" {
		return dbpkg.OpenPath(c.String("db"))
	}
	return dbpkg.Open()
}

func printRunTable(runs []dbpkg.Run) {
	fmt.Printf("%-6s %-20s %-8s %-8s %-8s %-8s %-8s %-30s\n",
		"ID", "Created", "Files", "Success", "Failed", "Skipped", "Bijoy", "Output Dir")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range runs {
		bijoy := "no"
		if r.ConvertBijoy {
			bijoy = "yes"
		}
		fmt.Printf("%-6d %-20s %-8d %-8d %-8d %-8d %-8s %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.FileCount,
			r.SuccessCount,
			r.FailedCount,
			r.SkippedCount,
			bijoy,
			r.OutputDir,
		)
	}
}

// InitAction creates the catalog schema. Open already does this on first
// use; the command exists for creating a catalog at an explicit path.
func InitAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if err := database.InitSchema(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	fmt.Println("Database schema initialized")
	return nil
}

func RunsAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	printRunTable(runs)

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'case-ingest db run <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("run not found: %d", runID)
	}

	results, err := database.GetRunResults(runID)
	if err != nil {
		return fmt.Errorf("failed to get run results: %w", err)
	}

	// Print run details
	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:      %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Output Dir:   %s\n", run.OutputDir)
	fmt.Printf("Files:        %d total (%d success, %d failed, %d skipped)\n",
		run.FileCount, run.SuccessCount, run.FailedCount, run.SkippedCount)
	fmt.Printf("Bijoy Conv:   %v\n", run.ConvertBijoy)

	if len(results) > 0 {
		fmt.Printf("\nResults (%d):\n", len(results))
		fmt.Println(strings.Repeat("-", 60))
		for i, r := range results {
			fmt.Printf("%2d. [%s] %s\n", i+1, r.Status, r.Filename)
			if r.Status == "success" {
				fmt.Printf("    Doc ID: %d | Words: %d\n", r.DocID, r.WordCount.Int64)
			} else {
				fmt.Printf("    Doc ID: %d | Error: [%s] %s\n",
					r.DocID, r.ErrorType.String, r.ErrorMessage.String)
			}
		}
	}

	fmt.Printf("\nTip: Use 'case-ingest db doc <doc_id>' to see document details\n")

	return nil
}

// QueryRunsAction queries runs with filters
func QueryRunsAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	todayOnly := c.Bool("today")
	failedOnly := c.Bool("failed")

	runs, err := database.QueryRuns(todayOnly, failedOnly)
	if err != nil {
		return fmt.Errorf("failed to query runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found matching filters")
		if todayOnly {
			fmt.Println("  - Filter: today only")
		}
		if failedOnly {
			fmt.Println("  - Filter: with failures")
		}
		return nil
	}

	printRunTable(runs)

	fmt.Printf("\nFound: %d runs\n", len(runs))

	return nil
}

// DocsAction lists ingested documents, optionally filtered by encoding
func DocsAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var docs []dbpkg.DocumentInfo
	encoding := c.String("encoding")
	if encoding != "" {
		docs, err = database.GetDocumentsByEncoding(encoding)
	} else {
		docs, err = database.ListDocuments(c.Int("limit"))
	}
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		fmt.Println("No documents found")
		return nil
	}

	fmt.Printf("%-6s %-30s %-25s %-10s %-8s %-8s\n",
		"ID", "Filename", "Case Number", "Encoding", "Pages", "Words")
	fmt.Println(strings.Repeat("-", 100))

	for _, d := range docs {
		caseNumber := d.CaseNumber.String
		if !d.CaseNumber.Valid {
			caseNumber = "(none)"
		}
		fmt.Printf("%-6d %-30s %-25s %-10s %-8d %-8d\n",
			d.DocID,
			d.Filename,
			caseNumber,
			d.OriginalEncoding.String,
			d.PageCount,
			d.WordCount,
		)
	}

	fmt.Printf("\nTotal: %d documents\n", len(docs))
	fmt.Printf("\nTip: Use 'case-ingest db doc <id>' to see details\n")

	return nil
}

// DocAction shows details for one document: profile, extracted metadata,
// artifacts and the latest extraction attempt
func DocAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("document ID or file path required\nUsage: case-ingest db doc <doc_id_or_path>\nExample: case-ingest db doc 42 OR case-ingest db doc ./judgments/123_State.pdf")
	}

	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	docID, err := ResolveDocID(c.Args().First(), database)
	if err != nil {
		return err
	}

	doc, err := database.GetDocumentByID(docID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("document not found: %d", docID)
	}

	fmt.Printf("Document %d\n", doc.DocID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("File:         %s\n", doc.FilePath)
	fmt.Printf("Case Number:  %s\n", nullOrNone(doc.CaseNumber.String, doc.CaseNumber.Valid))
	fmt.Printf("Case Type:    %s\n", nullOrNone(doc.CaseType.String, doc.CaseType.Valid))
	fmt.Printf("Court:        %s\n", nullOrNone(doc.Court.String, doc.Court.Valid))
	fmt.Printf("District:     %s\n", nullOrNone(doc.District.String, doc.District.Valid))
	fmt.Printf("Heard:        %s\n", nullOrNone(doc.HearingDate.String, doc.HearingDate.Valid))
	fmt.Printf("Judgment:     %s\n", nullOrNone(doc.JudgmentDate.String, doc.JudgmentDate.Valid))
	fmt.Printf("Encoding:     %s (bengali:%v, converted:%v)\n",
		doc.OriginalEncoding.String, doc.HasBengali, doc.ConvertedToUnicode)
	fmt.Printf("Size:         %d pages | %d words | %d chars\n",
		doc.PageCount, doc.WordCount, doc.CharCount)

	for _, ns := range []string{"judges", "parties", "citations"} {
		kv, err := database.GetDocumentMetadata(docID, ns)
		if err != nil {
			return fmt.Errorf("failed to get %s metadata: %w", ns, err)
		}
		if len(kv) == 0 {
			continue
		}
		keys := make([]string, 0, len(kv))
		for k := range kv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Printf("\n%s:\n", strings.ToUpper(ns[:1])+ns[1:])
		for _, k := range keys {
			fmt.Printf("  %-12s %s\n", k, kv[k])
		}
	}

	artifactRows, err := database.ListArtifacts(docID)
	if err != nil {
		return fmt.Errorf("failed to list artifacts: %w", err)
	}
	if len(artifactRows) > 0 {
		fmt.Printf("\nArtifacts (%d):\n", len(artifactRows))
		fmt.Println(strings.Repeat("-", 60))
		for _, a := range artifactRows {
			fmt.Printf("  %-15s %8d bytes  %s\n", a.TypeName, a.SizeBytes, a.FilePath)
		}
	}

	access, err := database.GetLastAccess(docID)
	if err != nil {
		return fmt.Errorf("failed to get last access: %w", err)
	}
	if access != nil {
		outcome := "ok"
		if !access.Success {
			outcome = "failed: " + access.ErrorType.String
		}
		fmt.Printf("\nLast extraction: %s via %s (%s)\n",
			access.AccessedAt.Format("2006-01-02 15:04:05"), access.Method.String, outcome)
	}

	fmt.Printf("\nTip: Use 'case-ingest db show %d' to see the metadata record\n", docID)

	return nil
}

// ShowAction prints one artifact file for a document
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("document ID or file path required\nUsage: case-ingest db show <doc_id_or_path>\nExample: case-ingest db show 42 OR case-ingest db show 42 --file clean")
	}

	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	docID, err := ResolveDocID(c.Args().First(), database)
	if err != nil {
		return err
	}

	fileType := strings.ToLower(c.String("file"))
	var fileName string
	switch fileType {
	case "metadata", "":
		fileName = artifacts.MetadataJSONFile
	case "yaml":
		fileName = artifacts.MetadataYAMLFile
	case "clean":
		fileName = artifacts.CleanTextFile
	case "raw":
		fileName = artifacts.RawTextFile
	default:
		return fmt.Errorf("unknown file type: %s (use: metadata, yaml, clean, or raw)", fileType)
	}

	outputDir := c.String("output-dir")
	if outputDir == "" {
		outputDir = artifacts.DefaultBaseDir
	}
	filePath := artifacts.GetDocArtifactPath(outputDir, docID, fileName)

	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not found for document %d\n\nThis document may not have been processed yet. Try:\n  case-ingest ingest --input <pdf>", fileName, docID)
		}
		return fmt.Errorf("failed to read file: %w", err)
	}

	fmt.Print(string(data))
	return nil
}

func FindDocAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("file path required\nUsage: case-ingest db find-doc <path>\nExample: case-ingest db find-doc ./judgments/123_State.pdf")
	}

	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	path := c.Args().First()
	docID, err := database.GetDocumentIDByPath(path)
	if err != nil {
		return fmt.Errorf("document not found in database: %s\nNote: Only ingested documents are tracked", path)
	}

	fmt.Printf("[#%d] %s\n", docID, path)
	return nil
}

func nullOrNone(s string, valid bool) string {
	if !valid || s == "" {
		return "(none)"
	}
	return s
}
