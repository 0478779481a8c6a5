package parse

import (
	"log/slog"

	"github.com/joseph-ayodele/schedule-extractor/constants"
	"github.com/joseph-ayodele/schedule-extractor/internal/entity"
)

// lookAhead bounds how many continuation lines may be consulted to fill
// speaker/location left unknown by the session line itself.
const lookAhead = 2

// Accumulator scans one file's classified lines in order, carrying the sticky
// date context across pages. State never crosses files; build a fresh
// Accumulator per input file.
type Accumulator struct {
	file        string
	fileOrder   int
	log         *slog.Logger
	tc          TimeContext
	currentDate string
	records     []entity.ScheduleRecord
}

func NewAccumulator(file string, fileOrder int, log *slog.Logger) *Accumulator {
	if log == nil {
		log = slog.Default()
	}
	return &Accumulator{file: file, fileOrder: fileOrder, log: log}
}

// Scan consumes a file's classified lines (all pages, in order). Date headers
// update the sticky date; session lines emit records, peeking at up to two
// following continuation lines for speaker/location. The look-ahead window
// runs over the classified-line sequence, so it crosses page boundaries.
func (a *Accumulator) Scan(lines []ClassifiedLine) {
	for i, ln := range lines {
		switch ln.Role {
		case RoleDateHeader:
			a.currentDate = ExtractDateText(ln.RawLine)
			a.log.Debug("date header", "file", a.file, "page", ln.Page, "date", a.currentDate)
		case RoleSession:
			f, ok := ExtractSession(ln.RawLine, &a.tc)
			if !ok {
				a.log.Debug("session line without usable text, dropped",
					"file", a.file, "page", ln.Page, "line", ln.Ordinal)
				continue
			}
			for j := i + 1; j <= i+lookAhead && j < len(lines); j++ {
				if lines[j].Role != RoleContinuation {
					break
				}
				if f.Speaker != "" && f.Location != "" {
					break
				}
				FillFromContinuation(&f, lines[j].Text)
			}
			a.records = append(a.records, entity.ScheduleRecord{
				Date:             orUnknown(a.currentDate),
				TimeSlots:        orUnknown(f.TimeSlots),
				SessionName:      f.SessionName,
				SpeakerOrganizer: orUnknown(f.Speaker),
				LocationVenue:    orUnknown(f.Location),
				StartMinutes:     f.StartMinutes,
				Provenance: entity.Provenance{
					File:      a.file,
					FileOrder: a.fileOrder,
					Page:      ln.Page,
					Line:      ln.Ordinal,
				},
			})
		}
	}
}

// Records returns every record emitted so far, in scan order.
func (a *Accumulator) Records() []entity.ScheduleRecord { return a.records }

func orUnknown(s string) string {
	if s == "" {
		return constants.Unknown
	}
	return s
}
