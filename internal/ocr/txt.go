package ocr

import (
	"fmt"
	"os"
	"strings"

	"github.com/joseph-ayodele/schedule-extractor/constants"
)

// readText loads a plain-text input (e.g. pre-extracted brochure text).
// Form feeds act as page separators, matching pdftotext conventions.
func (e *Extractor) readText(path string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{Format: constants.TXT, Method: "txt"}, fmt.Errorf("read %s: %w", path, err)
	}
	pages := strings.Split(string(b), "\f")
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		pages = pages[:e.cfg.MaxPages]
	}
	return Result{Pages: pages, Format: constants.TXT, Method: "txt"}, nil
}
