package parse

import (
	"testing"

	"github.com/joseph-ayodele/schedule-extractor/constants"
)

func scanText(t *testing.T, file string, pages ...string) *Accumulator {
	t.Helper()
	acc := NewAccumulator(file, 0, nil)
	var lines []ClassifiedLine
	prev := RoleNoise
	for i, pg := range pages {
		cls := ClassifyPage(i, pg, prev)
		if len(cls) > 0 {
			prev = cls[len(cls)-1].Role
		}
		lines = append(lines, cls...)
	}
	acc.Scan(lines)
	return acc
}

func TestDateHeaderInheritance(t *testing.T) {
	acc := scanText(t, "brochure.pdf",
		"Day 1\n9:00 AM - 10:00 AM Keynote (Hall A)\nDay 2\n9:00 AM - 10:00 AM Closing (Hall A)\n")
	recs := acc.Records()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Date != "Day 1" || recs[1].Date != "Day 2" {
		t.Errorf("dates = %q, %q; want Day 1, Day 2", recs[0].Date, recs[1].Date)
	}
	if recs[0].SessionName != "Keynote" || recs[1].SessionName != "Closing" {
		t.Errorf("sessions = %q, %q", recs[0].SessionName, recs[1].SessionName)
	}
}

func TestContinuationFill(t *testing.T) {
	acc := scanText(t, "brochure.pdf",
		"9:00 AM - 9:30 AM Opening Remarks\nSpeaker: Dr. Jane Doe\nRoom: Grand Ballroom\n")
	recs := acc.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.SessionName != "Opening Remarks" {
		t.Errorf("session = %q, want Opening Remarks", r.SessionName)
	}
	if r.SpeakerOrganizer != "Dr. Jane Doe" {
		t.Errorf("speaker = %q, want Dr. Jane Doe", r.SpeakerOrganizer)
	}
	if r.LocationVenue != "Grand Ballroom" {
		t.Errorf("location = %q, want Grand Ballroom", r.LocationVenue)
	}
}

func TestLookAheadBounded(t *testing.T) {
	// the room reference is three lines past the session; the two-line window
	// must not reach it
	acc := scanText(t, "brochure.pdf",
		"9:00 AM - 9:30 AM Opening Remarks\nA word from the committee\nAnother line of prose\nRoom: Grand Ballroom\n")
	recs := acc.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].LocationVenue != constants.Unknown {
		t.Errorf("location = %q, want %s", recs[0].LocationVenue, constants.Unknown)
	}
}

func TestDateStickyAcrossPages(t *testing.T) {
	acc := scanText(t, "brochure.pdf",
		"May 10 (Day 1)\n9:00 AM - 10:00 AM Keynote\n",
		"2:00 PM - 3:00 PM Workshop\n")
	recs := acc.Records()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[1].Date != "May 10 (Day 1)" {
		t.Errorf("page-2 record date = %q, want inherited header", recs[1].Date)
	}
	if recs[1].Provenance.Page != 1 {
		t.Errorf("page-2 record provenance page = %d, want 1", recs[1].Provenance.Page)
	}
}

func TestNoHeaderMeansUnknownDate(t *testing.T) {
	acc := scanText(t, "brochure.pdf", "9:00 AM - 10:00 AM Keynote\n")
	recs := acc.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Date != constants.Unknown {
		t.Errorf("date = %q, want %s", recs[0].Date, constants.Unknown)
	}
}

func TestPMContinuityWithinFile(t *testing.T) {
	acc := scanText(t, "brochure.pdf",
		"Day 1\n12:00 PM - 1:00 PM Lunch\n2:30 - 3:30 Breakout Sessions\n")
	recs := acc.Records()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[1].StartMinutes != 870 {
		t.Errorf("bare 2:30 after lunch = %d minutes, want 870 (PM)", recs[1].StartMinutes)
	}
}

func TestFreshAccumulatorPerFile(t *testing.T) {
	// PM continuity must not leak across files
	first := scanText(t, "a.pdf", "Day 1\n12:00 PM - 1:00 PM Lunch\n")
	_ = first.Records()

	second := scanText(t, "b.pdf", "Day 1\n2:30 - 3:30 Talk\n")
	recs := second.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].StartMinutes != 150 {
		t.Errorf("bare 2:30 in a fresh file = %d minutes, want 150 (AM)", recs[0].StartMinutes)
	}
}

func TestProvenanceOrdinals(t *testing.T) {
	acc := scanText(t, "brochure.pdf", "Day 1\n\n9:00 AM - 10:00 AM Keynote\n")
	recs := acc.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	p := recs[0].Provenance
	if p.File != "brochure.pdf" || p.Page != 0 || p.Line != 2 {
		t.Errorf("provenance = %+v", p)
	}
}
