// Package extract defines the boundary between the parsing core and whatever
// produces page text (text layer, OCR, plain files).
package extract

import "context"

// PageText is one page of raw text with its position and origin.
type PageText struct {
	Index  int
	Text   string
	Source string // "pdf-text" | "pdf-ocr" | "txt"
}

// PageTextSource supplies ordered per-page raw text for a file. The choice
// between direct extraction and OCR lives behind this interface; the parsing
// core never sees it.
type PageTextSource interface {
	PagesOf(ctx context.Context, path string) ([]PageText, error)
}
