// runextract is a debug tool: extract one file and dump what the pipeline saw.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/schedule-extractor/internal/common"
	"github.com/joseph-ayodele/schedule-extractor/internal/export"
	"github.com/joseph-ayodele/schedule-extractor/internal/extract"
	"github.com/joseph-ayodele/schedule-extractor/internal/ocr"
	"github.com/joseph-ayodele/schedule-extractor/internal/pipeline"
)

func main() {
	var (
		forceOCR = flag.Bool("ocr", false, "force OCR even when a text layer exists")
		timeout  = flag.Duration("timeout", 2*time.Minute, "per-file timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "runextract [-ocr] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg := common.LoadConfig()
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		MinTextBytes:  cfg.OCR.MinTextBytes,
		ForceOCR:      *forceOCR,
	}, logger)
	source := extract.NewOCRAdapter(extractor, logger)
	p := pipeline.NewPipeline(source, logger)

	start := time.Now()
	recs, err := p.Run(ctx, path, 0)
	if err != nil {
		logger.Error("extraction failed", "file", path, "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction ok",
		"file", path,
		"records", len(recs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	export.Preview(os.Stdout, recs)
}
