// Package schedule merges the per-file record lists into one ordered,
// deduplicated table.
package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/joseph-ayodele/schedule-extractor/constants"
	"github.com/joseph-ayodele/schedule-extractor/internal/entity"
	"github.com/joseph-ayodele/schedule-extractor/internal/parse"
)

// dateRank orders heterogeneous date texts. Texts that parse to a calendar
// date sort chronologically and come before non-calendar labels ("Day 1",
// "Thursday"), which sort by first-seen order across the whole run.
type dateRank struct {
	calendar bool
	when     time.Time
	seen     int
}

func (d dateRank) less(o dateRank) bool {
	if d.calendar != o.calendar {
		return d.calendar
	}
	if d.calendar {
		return d.when.Before(o.when)
	}
	return d.seen < o.seen
}

// Consolidate sorts, deduplicates, and completes records gathered from all
// files. The result is deterministic for a fixed input multiset with
// provenance, and running Consolidate on its own output changes nothing.
func Consolidate(recs []entity.ScheduleRecord) []entity.ScheduleRecord {
	out := make([]entity.ScheduleRecord, len(recs))
	copy(out, recs)

	// Provenance order first, so first-seen date numbering and duplicate
	// tie-breaks do not depend on caller ordering.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Provenance.Less(out[j].Provenance)
	})

	for i := range out {
		fillUnknown(&out[i])
	}

	ranks := rankDates(out)

	out = dedupe(out)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ra, rb := ranks[normalize(a.Date)], ranks[normalize(b.Date)]
		if ra != rb {
			return ra.less(rb)
		}
		if ta, tb := timeRank(a), timeRank(b); ta != tb {
			return ta < tb
		}
		return a.Provenance.Less(b.Provenance)
	})
	return out
}

// rankDates assigns each distinct date text a rank: a parsed calendar date
// when possible, else a stable first-seen number.
func rankDates(recs []entity.ScheduleRecord) map[string]dateRank {
	ranks := make(map[string]dateRank)
	next := 0
	for _, r := range recs {
		key := normalize(r.Date)
		if _, ok := ranks[key]; ok {
			continue
		}
		if t, err := dateparse.ParseAny(strings.TrimSpace(r.Date)); err == nil {
			ranks[key] = dateRank{calendar: true, when: t}
		} else {
			ranks[key] = dateRank{seen: next}
			next++
		}
	}
	return ranks
}

// dedupe collapses records with identical normalized date+time+session name.
// The record with more known fields wins; its remaining unknown fields are
// backfilled from the loser. Ties keep the earliest provenance (input is
// provenance-sorted).
func dedupe(recs []entity.ScheduleRecord) []entity.ScheduleRecord {
	index := make(map[string]int, len(recs))
	kept := recs[:0]
	for _, r := range recs {
		key := normalize(r.Date) + "\x00" + normalize(r.TimeSlots) + "\x00" + normalize(r.SessionName)
		if at, ok := index[key]; ok {
			kept[at] = mergeDuplicate(kept[at], r)
			continue
		}
		index[key] = len(kept)
		kept = append(kept, r)
	}
	return kept
}

func mergeDuplicate(first, second entity.ScheduleRecord) entity.ScheduleRecord {
	winner, loser := first, second
	if knownFields(second) > knownFields(first) {
		winner, loser = second, first
	}
	if !known(winner.SpeakerOrganizer) && known(loser.SpeakerOrganizer) {
		winner.SpeakerOrganizer = loser.SpeakerOrganizer
	}
	if !known(winner.LocationVenue) && known(loser.LocationVenue) {
		winner.LocationVenue = loser.LocationVenue
	}
	return winner
}

func knownFields(r entity.ScheduleRecord) int {
	n := 0
	for _, v := range r.Row() {
		if known(v) {
			n++
		}
	}
	return n
}

func known(v string) bool {
	return v != "" && v != constants.Unknown
}

func fillUnknown(r *entity.ScheduleRecord) {
	if r.Date == "" {
		r.Date = constants.Unknown
	}
	if r.TimeSlots == "" {
		r.TimeSlots = constants.Unknown
	}
	if r.SpeakerOrganizer == "" {
		r.SpeakerOrganizer = constants.Unknown
	}
	if r.LocationVenue == "" {
		r.LocationVenue = constants.Unknown
	}
}

func timeRank(r entity.ScheduleRecord) int {
	if r.StartMinutes < 0 || r.StartMinutes >= parse.TimeSentinel {
		return parse.TimeSentinel
	}
	return r.StartMinutes
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
