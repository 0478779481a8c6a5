package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/schedule-extractor/internal/export"
	"github.com/joseph-ayodele/schedule-extractor/internal/ingest"
	"github.com/joseph-ayodele/schedule-extractor/internal/schedule"
)

func init() {
	cmd := &cobra.Command{
		Use:   "extract [files or directories...]",
		Short: "Extract schedules and write the consolidated table",
		Long:  "Extract schedule records from the given PDFs (or directories of PDFs), consolidate them, and write a CSV or XLSX table.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runExtract,
	}

	cmd.Flags().StringP("out", "o", "schedule.csv", "Output file (.csv or .xlsx)")

	RootCmd.AddCommand(cmd)
}

func runExtract(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")

	files, stats, err := ingest.CollectInputs(args)
	if err != nil {
		exitErr("collect inputs", err)
	}
	if len(files) == 0 {
		exitErr("collect inputs", fmt.Errorf("no supported input files under %s", strings.Join(args, ", ")))
	}

	processor := buildProcessor()
	raw, runStats := processor.ProcessAll(cmd.Context(), files)
	recs := schedule.Consolidate(raw)

	switch strings.ToLower(filepath.Ext(out)) {
	case ".xlsx":
		b, err := export.WriteXLSX(recs)
		if err != nil {
			exitErr("write xlsx", err)
		}
		if err := os.WriteFile(out, b, 0o644); err != nil {
			exitErr("write output file", err)
		}
	default:
		f, err := os.Create(out)
		if err != nil {
			exitErr("create output file", err)
		}
		if err := export.WriteCSV(f, recs); err != nil {
			_ = f.Close()
			exitErr("write csv", err)
		}
		if err := f.Close(); err != nil {
			exitErr("close output file", err)
		}
	}

	fmt.Printf("Extraction complete!\n")
	fmt.Printf("- Files scanned: %d (matched %d)\n", stats.Scanned, stats.Matched)
	fmt.Printf("- Files processed: %d\n", runStats.Files-runStats.Failed)
	fmt.Printf("- Failures: %d\n", runStats.Failed)
	fmt.Printf("- Records: %d\n", len(recs))
	fmt.Printf("- Output: %s\n", out)
}
