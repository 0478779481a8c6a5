package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner stands in for pdftoppm/tesseract. On a pdftoppm call it drops
// fake page images under the requested prefix; on a tesseract call it returns
// canned text for the page it was given.
type fakeRunner struct {
	pageCount int
	pageText  map[int]string
	failPages map[int]bool
	calls     []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if strings.Contains(name, "pdftoppm") {
		prefix := args[len(args)-1]
		for i := 1; i <= f.pageCount; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}
	if strings.Contains(name, "tesseract") {
		img := args[0]
		var page int
		if _, err := fmt.Sscanf(filepath.Base(img), "page-%d.png", &page); err != nil {
			return nil, nil, fmt.Errorf("unexpected image name %q", img)
		}
		if f.failPages[page] {
			return nil, []byte("boom"), fmt.Errorf("exit status 1")
		}
		return []byte(f.pageText[page]), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func TestPDFToOCRPerPage(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	r := &fakeRunner{
		pageCount: 2,
		pageText: map[int]string{
			1: "Day 1\n9:00 AM - 10:00 AM Keynote",
			2: "Day 2\n9:00 AM - 10:00 AM Closing",
		},
	}
	e.runner = r

	pages, warns, err := e.pdfToOCR(context.Background(), "brochure.pdf")
	if err != nil {
		t.Fatalf("pdfToOCR: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if !strings.Contains(pages[0], "Day 1") || !strings.Contains(pages[1], "Day 2") {
		t.Errorf("page order wrong: %q / %q", pages[0], pages[1])
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
}

func TestPDFToOCRSkipsFailedPage(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = &fakeRunner{
		pageCount: 2,
		pageText:  map[int]string{2: "Day 2 text"},
		failPages: map[int]bool{1: true},
	}

	pages, warns, err := e.pdfToOCR(context.Background(), "brochure.pdf")
	if err != nil {
		t.Fatalf("one bad page must not fail the file: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2 (failed page kept as empty)", len(pages))
	}
	if pages[0] != "" {
		t.Errorf("failed page text = %q, want empty", pages[0])
	}
	if len(warns) == 0 {
		t.Error("expected a warning for the failed page")
	}
}

func TestPDFToOCRMaxPages(t *testing.T) {
	e := NewExtractor(Config{MaxPages: 1}, nil)
	e.runner = &fakeRunner{
		pageCount: 3,
		pageText:  map[int]string{1: "one", 2: "two", 3: "three"},
	}

	pages, _, err := e.pdfToOCR(context.Background(), "brochure.pdf")
	if err != nil {
		t.Fatalf("pdfToOCR: %v", err)
	}
	if len(pages) != 1 {
		t.Errorf("got %d pages, want 1", len(pages))
	}
}

func TestExtractTxtInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extracted_text.txt")
	content := "Day 1\n9:00 AM Keynote\f Day 2\n9:00 AM Closing"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "txt" || len(res.Pages) != 2 {
		t.Fatalf("method=%q pages=%d, want txt/2", res.Method, len(res.Pages))
	}
	if !strings.Contains(res.Pages[1], "Day 2") {
		t.Errorf("page split wrong: %q", res.Pages[1])
	}
	if res.Confidence <= 0.2 {
		t.Errorf("confidence = %f, schedule text should score above base", res.Confidence)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	if _, err := e.Extract(context.Background(), "photo.heic"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
