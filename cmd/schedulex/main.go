package main

import (
	"os"

	"github.com/joseph-ayodele/schedule-extractor/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
