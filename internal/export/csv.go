// Package export writes the consolidated table as CSV or XLSX and renders a
// stdout preview.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/joseph-ayodele/schedule-extractor/constants"
	"github.com/joseph-ayodele/schedule-extractor/internal/entity"
)

// WriteCSV writes the header row plus one row per record.
func WriteCSV(w io.Writer, recs []entity.ScheduleRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(constants.CSVHeader); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, r := range recs {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
