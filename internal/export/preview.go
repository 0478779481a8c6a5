package export

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/joseph-ayodele/schedule-extractor/constants"
	"github.com/joseph-ayodele/schedule-extractor/internal/entity"
)

// Preview renders the table to w for a quick terminal look at the results.
func Preview(w io.Writer, recs []entity.ScheduleRecord) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(constants.CSVHeader)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	for _, r := range recs {
		t.Append(r.Row())
	}
	t.Render()
}
