// Package pipeline wires page text sources into the parsing core and fans the
// per-file record lists into the consolidator.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/schedule-extractor/internal/common"
	"github.com/joseph-ayodele/schedule-extractor/internal/entity"
	"github.com/joseph-ayodele/schedule-extractor/internal/extract"
	"github.com/joseph-ayodele/schedule-extractor/internal/parse"
)

// Pipeline runs the single-file pass: pages -> classified lines -> records.
type Pipeline struct {
	Source extract.PageTextSource
	Log    *slog.Logger
}

func NewPipeline(src extract.PageTextSource, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{Source: src, Log: log}
}

// Run extracts all schedule records from one file. fileOrder is the file's
// position in the input list; it feeds provenance ordering. A file that
// yields no pages is a per-file failure and returns an error.
func (p *Pipeline) Run(ctx context.Context, path string, fileOrder int) ([]entity.ScheduleRecord, error) {
	jobID := uuid.New()
	pages, err := p.Source.PagesOf(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("pages of %s: %w", path, err)
	}
	if len(pages) == 0 {
		return nil, common.NewAppError("NO_TEXT", fmt.Sprintf("no pages of text in %s", path), common.ErrExtraction)
	}

	// classify every page, threading the trailing role so continuation lines
	// can follow a session across a page boundary
	var lines []parse.ClassifiedLine
	prev := parse.RoleNoise
	for _, pg := range pages {
		cls := parse.ClassifyPage(pg.Index, pg.Text, prev)
		if len(cls) > 0 {
			prev = cls[len(cls)-1].Role
		}
		lines = append(lines, cls...)
	}

	acc := parse.NewAccumulator(path, fileOrder, p.Log)
	acc.Scan(lines)
	recs := acc.Records()

	p.Log.Info("file processed",
		"job_id", jobID,
		"file", path,
		"pages", len(pages),
		"lines", len(lines),
		"records", len(recs),
	)
	return recs, nil
}

// Stats summarizes a multi-file run.
type Stats struct {
	Files   int
	Failed  int
	Records int
}

// Processor runs the pipeline over many files. One bad input never fails the
// batch; its records are simply absent.
type Processor struct {
	Pipeline *Pipeline
	Log      *slog.Logger
}

func NewProcessor(p *Pipeline, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{Pipeline: p, Log: log}
}

// ProcessAll gathers raw records from every file in input order.
// Consolidation is the caller's next step.
func (pr *Processor) ProcessAll(ctx context.Context, files []string) ([]entity.ScheduleRecord, Stats) {
	var all []entity.ScheduleRecord
	stats := Stats{Files: len(files)}
	for i, f := range files {
		recs, err := pr.Pipeline.Run(ctx, f, i)
		if err != nil {
			pr.Log.Error("file extraction failed", "file", f, "error", err)
			stats.Failed++
			continue
		}
		all = append(all, recs...)
	}
	stats.Records = len(all)
	return all, stats
}
