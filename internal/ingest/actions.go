package ingest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/legalbuddy/case-ingest/internal/common"
	"github.com/legalbuddy/case-ingest/models"
	"github.com/legalbuddy/case-ingest/pkg/artifacts"
	"github.com/legalbuddy/case-ingest/pkg/bijoy"
	"github.com/legalbuddy/case-ingest/pkg/db"
	"github.com/legalbuddy/case-ingest/pkg/pipeline"
)

// IngestAction is the entry point for the ingest command: extract, classify,
// convert, normalize and catalog a batch of case PDFs.
func IngestAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	// Optional config file seeds the defaults; flags always win.
	input := c.String("input")
	outputDir := c.String("output-dir")
	workers := c.Int("workers")
	convertBijoy := c.Bool("convert-bijoy")
	maxAgeStr := c.String("max-age")
	extractTimeoutStr := c.String("extract-timeout")
	dbPath := c.String("db")

	if c.IsSet("config") {
		fileCfg, err := models.LoadConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config file", "error", err)
			os.Exit(2)
		}
		if !c.IsSet("input") && fileCfg.InputDir != "" {
			input = fileCfg.InputDir
		}
		if !c.IsSet("output-dir") && fileCfg.OutputDir != "" {
			outputDir = fileCfg.OutputDir
		}
		if !c.IsSet("workers") && fileCfg.Workers > 0 {
			workers = fileCfg.Workers
		}
		if !c.IsSet("convert-bijoy") {
			convertBijoy = fileCfg.ConvertBijoy
		}
		if !c.IsSet("max-age") && fileCfg.MaxAge != "" {
			maxAgeStr = fileCfg.MaxAge
		}
		if !c.IsSet("extract-timeout") && fileCfg.ExtractTimeout != "" {
			extractTimeoutStr = fileCfg.ExtractTimeout
		}
		if !c.IsSet("db") && fileCfg.DBPath != "" {
			dbPath = fileCfg.DBPath
		}
	}

	var maxAge time.Duration
	var err error
	if c.Bool("force-extract") {
		maxAge = 0
	} else {
		maxAge, err = time.ParseDuration(maxAgeStr)
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	extractTimeout, err := time.ParseDuration(extractTimeoutStr)
	if err != nil {
		logger.Error("invalid extract-timeout duration", "error", err)
		os.Exit(2)
	}

	manager, err := artifacts.NewManager(outputDir, maxAge)
	if err != nil {
		logger.Error("failed to initialize artifact manager", "error", err)
		os.Exit(2)
	}

	var database *db.DB
	if dbPath != "" {
		database, err = db.OpenPath(dbPath)
	} else {
		database, err = db.Open()
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: No input provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  case-ingest ingest --input ./judgments`)
		fmt.Fprintln(os.Stderr, `  case-ingest ingest --input "a.pdf,b.pdf" --convert-bijoy`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: case-ingest ingest --help")
		os.Exit(1)
	}

	files, invalid, err := common.CollectPDFs(input)
	if err != nil {
		logger.Error("failed to collect input files", "error", err)
		os.Exit(2)
	}
	if len(invalid) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d input(s) are not readable PDF files:\n", len(invalid))
		for _, bad := range invalid {
			fmt.Fprintf(os.Stderr, "  - %s\n", bad)
		}
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No PDF files found in input")
		os.Exit(1)
	}

	config := &models.IngestConfig{
		Files:          files,
		WorkerCount:    workers,
		ConvertBijoy:   convertBijoy,
		ExtractTimeout: extractTimeout,
	}

	var converter *bijoy.Converter
	if convertBijoy {
		converter = bijoy.NewConverter(bijoy.TableCodec{})
	} else {
		converter = bijoy.NewConverter(nil)
	}
	proc := pipeline.NewProcessor(converter, logger)

	runID, err := database.CreateRun(len(files), convertBijoy, outputDir)
	if err != nil {
		logger.Error("failed to create run record", "error", err)
		os.Exit(2)
	}
	logger.Info("Run created", "run_id", runID)

	allResults, finalWordCounts, runErr := run(logger, config, manager, proc, c.Bool("force-extract"), database)

	finalOutput := BuildOutput(allResults, time.Since(startTime), finalWordCounts, runID)

	// Record per-document results and run totals
	for _, r := range allResults {
		if r.DocID == 0 {
			continue
		}
		status := "success"
		errorType := ""
		errorMessage := ""
		wordCount := 0
		switch {
		case r.Skipped:
			status = "skipped"
			errorType = r.ErrorType
			errorMessage = r.Error.Error()
		case r.Error != nil:
			status = "failed"
			errorType = r.ErrorType
			errorMessage = r.Error.Error()
		default:
			wordCount = r.Doc.WordCount
		}
		if err := database.InsertRunResult(runID, r.DocID, status, errorType, errorMessage, wordCount); err != nil {
			logger.Warn("Failed to insert run result", "file", r.Path, "error", err)
		}
	}
	if err := database.UpdateRunStats(runID, finalOutput.Stats.Successful, finalOutput.Stats.Failed, finalOutput.Stats.Skipped); err != nil {
		logger.Warn("Failed to update run stats in DB", "error", err)
	}

	if err := WriteSummaryFile(manager.BaseDir(), finalOutput); err != nil {
		logger.Warn("Failed to write processing summary", "error", err)
	}

	var outputData []byte
	var marshalErr error
	if strings.ToLower(c.String("format")) == "yaml" {
		outputData, marshalErr = yaml.Marshal(finalOutput)
	} else {
		outputData, marshalErr = json.MarshalIndent(finalOutput, "", "  ")
	}
	if marshalErr != nil {
		logger.Error("failed to marshal final output", "error", marshalErr)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	if runErr != nil {
		logger.Warn("Run completed with failures", "failed", finalOutput.Stats.Failed)
	}
	if finalOutput.Stats.Failed > 0 && finalOutput.Stats.Successful == 0 && finalOutput.Stats.Skipped == 0 {
		os.Exit(2)
	}
	if finalOutput.Stats.Failed > 0 {
		os.Exit(1)
	}

	return nil
}
