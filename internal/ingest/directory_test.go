package ingest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectInputsDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.pdf"))
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "notes.docx"))
	touch(t, filepath.Join(dir, ".hidden.pdf"))
	touch(t, filepath.Join(dir, ".cache", "stale.pdf"))
	touch(t, filepath.Join(dir, "nested", "c.PDF"))

	files, stats, err := CollectInputs([]string{dir})
	if err != nil {
		t.Fatalf("CollectInputs: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "nested", "c.PDF"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}
	if stats.Matched != 3 {
		t.Errorf("matched = %d, want 3", stats.Matched)
	}
	if stats.Skipped == 0 {
		t.Error("hidden and unsupported entries must count as skipped")
	}
}

func TestCollectInputsPreservesArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "z.pdf")
	second := filepath.Join(dir, "a.pdf")
	touch(t, first)
	touch(t, second)

	files, _, err := CollectInputs([]string{first, second})
	if err != nil {
		t.Fatalf("CollectInputs: %v", err)
	}
	if !reflect.DeepEqual(files, []string{first, second}) {
		t.Errorf("files = %v, explicit arguments must keep their order", files)
	}
}

func TestCollectInputsMissingPath(t *testing.T) {
	if _, _, err := CollectInputs([]string{"/no/such/path.pdf"}); err == nil {
		t.Error("expected error for a missing path")
	}
}

func TestCollectInputsEmptyArg(t *testing.T) {
	if _, _, err := CollectInputs([]string{"  "}); err == nil {
		t.Error("expected error for a blank argument")
	}
}
