// Package cli implements the schedulex CLI commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/schedule-extractor/internal/common"
	"github.com/joseph-ayodele/schedule-extractor/internal/extract"
	"github.com/joseph-ayodele/schedule-extractor/internal/ocr"
	"github.com/joseph-ayodele/schedule-extractor/internal/pipeline"
)

var (
	verbose  bool
	forceOCR bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "schedulex",
	Short: "Extract event schedules from brochure PDFs",
	Long:  "Extracts date, time, session, speaker, and venue from event-brochure PDFs (text layer or OCR) and consolidates them into one chronologically ordered table.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().BoolVar(&forceOCR, "ocr", false, "Force OCR even when a text layer exists")
}

// buildProcessor wires config -> extractor -> page source -> pipeline.
func buildProcessor() *pipeline.Processor {
	cfg := common.LoadConfig()
	logger := slog.Default()
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		MinTextBytes:  cfg.OCR.MinTextBytes,
		ForceOCR:      forceOCR,
	}, logger)
	source := extract.NewOCRAdapter(extractor, logger)
	return pipeline.NewProcessor(pipeline.NewPipeline(source, logger), logger)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
