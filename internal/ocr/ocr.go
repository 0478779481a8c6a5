// Package ocr turns input files into per-page raw text. PDFs are read from
// their embedded text layer when one exists; scanned PDFs fall back to
// rasterization plus tesseract. Plain-text files pass straight through.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/schedule-extractor/constants"
	"github.com/joseph-ayodele/schedule-extractor/internal/common"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir string
	PSM         int // 6 = uniform block of text, the brochure default
	OEM         int // 3 = default engine

	// MinTextBytes is the threshold below which the text layer is considered
	// absent and OCR kicks in. Default 32.
	MinTextBytes int

	// ForceOCR skips the text layer entirely.
	ForceOCR bool
}

// Result is the per-file extraction outcome handed to the parsing core.
type Result struct {
	Pages      []string // raw text per page, page order preserved
	Format     string   // constants.PDF | constants.TXT
	Method     string   // "pdf-text" | "pdf-ocr" | "txt"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 6
	}
	if cfg.OEM <= 0 {
		cfg.OEM = 3
	}
	if cfg.MinTextBytes <= 0 {
		cfg.MinTextBytes = 32
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	var res Result
	var err error
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	case constants.TXT:
		res, err = e.readText(path)
	default:
		e.logger.Error("unsupported extension", "extension", ext, "path", path)
		return Result{}, common.NewAppError("UNSUPPORTED_FORMAT", fmt.Sprintf("unsupported extension: %q", ext), common.ErrInvalidInput)
	}
	res.Duration = time.Since(start)
	if err != nil {
		return res, err
	}

	for i := range res.Pages {
		res.Pages[i] = Normalize(res.Pages[i])
	}
	res.Language = e.cfg.TesseractLang
	res.Confidence = heuristicConfidence(strings.Join(res.Pages, "\n"))
	return res, nil
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	if !e.cfg.ForceOCR {
		pages, err := textLayerPages(path, e.cfg.MaxPages)
		if err == nil && textBytes(pages) >= e.cfg.MinTextBytes {
			return Result{Pages: pages, Format: constants.PDF, Method: "pdf-text"}, nil
		}
		if err != nil {
			e.logger.Warn("text layer unreadable, falling back to ocr", "path", path, "error", err)
		} else {
			e.logger.Info("text layer empty or sparse, falling back to ocr", "path", path)
		}
	}
	pages, warns, err := e.pdfToOCR(ctx, path)
	if err != nil {
		return Result{Format: constants.PDF, Method: "pdf-ocr", Warnings: warns}, err
	}
	return Result{Pages: pages, Format: constants.PDF, Method: "pdf-ocr", Warnings: warns}, nil
}

func textBytes(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}
