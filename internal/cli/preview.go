package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/schedule-extractor/internal/export"
	"github.com/joseph-ayodele/schedule-extractor/internal/ingest"
	"github.com/joseph-ayodele/schedule-extractor/internal/schedule"
)

func init() {
	cmd := &cobra.Command{
		Use:   "preview [files or directories...]",
		Short: "Extract schedules and print the table to stdout",
		Args:  cobra.MinimumNArgs(1),
		Run:   runPreview,
	}

	RootCmd.AddCommand(cmd)
}

func runPreview(cmd *cobra.Command, args []string) {
	files, _, err := ingest.CollectInputs(args)
	if err != nil {
		exitErr("collect inputs", err)
	}
	if len(files) == 0 {
		exitErr("collect inputs", fmt.Errorf("no supported input files"))
	}

	processor := buildProcessor()
	raw, stats := processor.ProcessAll(cmd.Context(), files)
	recs := schedule.Consolidate(raw)

	export.Preview(os.Stdout, recs)
	if stats.Failed > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d of %d files failed extraction\n", stats.Failed, stats.Files)
	}
}
