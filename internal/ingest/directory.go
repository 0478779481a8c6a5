// Package ingest discovers input files for a run.
package ingest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/schedule-extractor/constants"
	"github.com/joseph-ayodele/schedule-extractor/internal/common"
)

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
}

// CollectInputs expands a mix of files and directories into a flat, ordered
// input list. Directories are walked recursively; hidden entries and
// unsupported extensions are skipped. Order is deterministic: arguments in
// the order given, directory contents sorted by path.
func CollectInputs(args []string) ([]string, DirStats, error) {
	var files []string
	var stats DirStats
	for _, a := range args {
		if strings.TrimSpace(a) == "" {
			return nil, stats, common.NewAppError("INVALID_INPUT", "empty input path", common.ErrInvalidInput)
		}
		matched, err := collectOne(a, &stats)
		if err != nil {
			return nil, stats, err
		}
		files = append(files, matched...)
	}
	return files, stats, nil
}

func collectOne(root string, stats *DirStats) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		stats.Scanned++
		if isHidden(path) && path != root {
			stats.Skipped++
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			stats.Skipped++
			return nil
		}
		stats.Matched++
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(out)
	return out, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
