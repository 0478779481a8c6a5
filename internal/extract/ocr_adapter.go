package extract

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/schedule-extractor/internal/ocr"
)

// OCRAdapter adapts ocr.Extractor to the PageTextSource contract.
type OCRAdapter struct {
	e   *ocr.Extractor
	log *slog.Logger
}

func NewOCRAdapter(e *ocr.Extractor, log *slog.Logger) *OCRAdapter {
	if log == nil {
		log = slog.Default()
	}
	return &OCRAdapter{e: e, log: log}
}

func (a *OCRAdapter) PagesOf(ctx context.Context, path string) ([]PageText, error) {
	res, err := a.e.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	a.log.Info("text extraction ok",
		"path", path,
		"method", res.Method,
		"pages", len(res.Pages),
		"confidence", res.Confidence,
		"warnings", len(res.Warnings),
		"duration_ms", res.Duration.Milliseconds(),
	)
	pages := make([]PageText, len(res.Pages))
	for i, p := range res.Pages {
		pages[i] = PageText{Index: i, Text: p, Source: res.Method}
	}
	return pages, nil
}
