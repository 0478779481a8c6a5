package entity

// Provenance identifies where a record came from. Used for merge tie-breaks
// and debugging; never shown in the output table.
type Provenance struct {
	File      string `json:"file"`
	FileOrder int    `json:"file_order"`
	Page      int    `json:"page"`
	Line      int    `json:"line"`
}

// Less orders provenance by (file input order, page index, line ordinal).
func (p Provenance) Less(o Provenance) bool {
	if p.FileOrder != o.FileOrder {
		return p.FileOrder < o.FileOrder
	}
	if p.Page != o.Page {
		return p.Page < o.Page
	}
	return p.Line < o.Line
}

// ScheduleRecord is one row of the output table: a single session/activity.
// Date and time are kept as matched text; StartMinutes is the derived
// minutes-since-midnight sort value (-1 when no time was extracted).
type ScheduleRecord struct {
	Date             string     `json:"date"`
	TimeSlots        string     `json:"time_slots"`
	SessionName      string     `json:"session_name"`
	SpeakerOrganizer string     `json:"speaker_organizer"`
	LocationVenue    string     `json:"location_venue"`
	StartMinutes     int        `json:"-"`
	Provenance       Provenance `json:"-"`
}

// Row returns the five output columns in header order.
func (r ScheduleRecord) Row() []string {
	return []string{r.Date, r.TimeSlots, r.SessionName, r.SpeakerOrganizer, r.LocationVenue}
}
