package ocr

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// textLayerPages extracts the embedded text layer page by page, pure Go, no
// external binaries. Scanned (image-only) PDFs come back empty and are left
// to the OCR fallback.
func textLayerPages(path string, maxPages int) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	numPages := r.NumPage()
	if maxPages > 0 && numPages > maxPages {
		numPages = maxPages
	}

	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f2 := p.Font(name)
				fonts[name] = &f2
			}
		}
		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", i, pageErr)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
