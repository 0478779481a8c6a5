package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// pdfToOCR rasterizes each page and runs tesseract over the images.
// One OCR failure does not abort the file; the page is skipped with a warning.
func (e *Extractor) pdfToOCR(ctx context.Context, path string) (pages []string, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "sx-pp-*")
	if err != nil {
		return nil, nil, err
	}
	defer func(dir string) {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", dir, "error", rmErr)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var warns []string
	for _, img := range matches {
		txt, w, ocrErr := e.tesseractOCR(ctx, img)
		warns = append(warns, w...)
		if ocrErr != nil {
			warns = append(warns, ocrErr.Error())
			pages = append(pages, "")
			continue
		}
		pages = append(pages, txt)
	}
	return pages, warns, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang,
		"--psm", fmt.Sprintf("%d", e.cfg.PSM),
		"--oem", fmt.Sprintf("%d", e.cfg.OEM),
		"-c", "preserve_interword_spaces=1",
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <img> stdout -l <lang> --psm 6 --oem 3
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// strip obvious line noise before the classifier sees it
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}
