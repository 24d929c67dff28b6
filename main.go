package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	dbcli "github.com/legalbuddy/case-ingest/internal/db"
	"github.com/legalbuddy/case-ingest/internal/ingest"
	"github.com/legalbuddy/case-ingest/internal/inspect"
	"github.com/legalbuddy/case-ingest/pkg/artifacts"
	"github.com/legalbuddy/case-ingest/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "case-ingest",
		Usage: "Extract, convert and catalog Bangladeshi court judgment PDFs",
		Description: "Pulls text out of case PDFs, detects Bijoy-encoded Bengali and " +
			"optionally converts it to Unicode, normalizes the text, extracts case " +
			"metadata (case number, court, judges, parties, dates, citations) and " +
			"records everything in a local SQLite catalog.",
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Process a directory or list of case PDFs",
				UsageText: "case-ingest ingest --input ./judgments [options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Directory of PDFs, or comma-separated PDF paths",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Value:   artifacts.DefaultBaseDir,
						Usage:   "Directory for per-document results",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Value:   4,
						Usage:   "Number of concurrent workers",
					},
					&cli.BoolFlag{
						Name:  "convert-bijoy",
						Usage: "Convert Bijoy-encoded Bengali text to Unicode",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "24h",
						Usage: "Reuse cached raw text younger than this (e.g. 1h, 24h, 7d)",
					},
					&cli.BoolFlag{
						Name:  "force-extract",
						Usage: "Ignore cached raw text and re-extract from the PDFs",
					},
					&cli.StringFlag{
						Name:  "extract-timeout",
						Value: "2m",
						Usage: "Per-document bound on PDF extraction (0 = unbounded)",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the SQLite catalog (default: next to the binary)",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML config file; flags override its values",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Only log errors",
					},
				},
				Action: ingest.IngestAction,
			},
			{
				Name:      "inspect",
				Usage:     "Extract and process a single PDF without cataloging it",
				UsageText: "case-ingest inspect <file.pdf> [options]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "convert-bijoy",
						Usage: "Convert Bijoy-encoded Bengali text to Unicode",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "yaml",
						Usage: "Output format: yaml or json",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Only log errors",
					},
				},
				Action: inspect.InspectAction,
			},
			{
				Name:  "db",
				Usage: "Query the ingest catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the SQLite catalog (default: next to the binary)",
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "List ingest runs",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "Maximum number of runs to show (0 = all)",
							},
						},
						Action: dbcli.RunsAction,
					},
					{
						Name:      "run",
						Usage:     "Show details for a run (latest if omitted)",
						UsageText: "case-ingest db run [run_id]",
						Action:    dbcli.RunAction,
					},
					{
						Name:  "query",
						Usage: "Query runs with filters",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "today",
								Usage: "Only runs created today",
							},
							&cli.BoolFlag{
								Name:  "failed",
								Usage: "Only runs with failures",
							},
						},
						Action: dbcli.QueryRunsAction,
					},
					{
						Name:  "docs",
						Usage: "List ingested documents",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "Maximum number of documents to show (0 = all)",
							},
							&cli.StringFlag{
								Name:  "encoding",
								Usage: "Filter by script verdict: none, unicode, bijoy, mixed",
							},
						},
						Action: dbcli.DocsAction,
					},
					{
						Name:      "doc",
						Usage:     "Show details for a document",
						UsageText: "case-ingest db doc <doc_id_or_path>",
						Action:    dbcli.DocAction,
					},
					{
						Name:      "show",
						Usage:     "Print an artifact file for a document",
						UsageText: "case-ingest db show <doc_id_or_path> [--file metadata|yaml|clean|raw]",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "file",
								Value: "metadata",
								Usage: "Which artifact to print: metadata, yaml, clean, or raw",
							},
							&cli.StringFlag{
								Name:  "output-dir",
								Value: artifacts.DefaultBaseDir,
								Usage: "Directory holding per-document results",
							},
						},
						Action: dbcli.ShowAction,
					},
					{
						Name:      "find-doc",
						Usage:     "Look up the document ID for a file path",
						UsageText: "case-ingest db find-doc <path>",
						Action:    dbcli.FindDocAction,
					},
					{
						Name:   "init",
						Usage:  "Initialize the catalog schema",
						Action: dbcli.InitAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML cheat sheet for common workflows",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
