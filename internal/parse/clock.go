package parse

import (
	"strconv"
	"strings"
)

// TimeSentinel is the minutes value assigned when no time could be resolved.
// It sorts after every real clock time.
const TimeSentinel = 1 << 30

// ClockTime is a matched clock time before meridiem resolution.
type ClockTime struct {
	Hour     int
	Minute   int
	Meridiem byte // 'a', 'p', or 0 when the text carried no AM/PM
}

// ParseClockTime parses a single matched clock token ("9:00 am", "14:30").
func ParseClockTime(s string) (ClockTime, bool) {
	m := reClock.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil || h > 23 {
		return ClockTime{}, false
	}
	mi, err := strconv.Atoi(m[2])
	if err != nil {
		return ClockTime{}, false
	}
	ct := ClockTime{Hour: h, Minute: mi}
	if m[3] != "" {
		switch strings.ToLower(m[3])[0] {
		case 'a':
			ct.Meridiem = 'a'
		case 'p':
			ct.Meridiem = 'p'
		}
	}
	return ct, true
}

// TimeContext carries the per-file AM/PM continuity state. A time missing its
// meridiem with hour 1-7 is read as PM once a PM time has been resolved
// earlier in the same file, otherwise as AM. This is a known, documented
// source of extraction error; brochures routinely omit the meridiem on the
// second half of a range.
type TimeContext struct {
	PMSeen bool
}

// Resolve converts a clock time to minutes since midnight and updates the
// continuity state. Hours >= 13 (and 0) are taken as 24-hour notation; a bare
// 12 reads as noon.
func (tc *TimeContext) Resolve(ct ClockTime) int {
	switch ct.Meridiem {
	case 'p':
		tc.PMSeen = true
		return (ct.Hour%12+12)*60 + ct.Minute
	case 'a':
		return (ct.Hour%12)*60 + ct.Minute
	}
	switch {
	case ct.Hour == 0 || ct.Hour >= 13:
		if ct.Hour >= 13 {
			tc.PMSeen = true
		}
		return ct.Hour*60 + ct.Minute
	case ct.Hour == 12:
		tc.PMSeen = true
		return 12*60 + ct.Minute
	case ct.Hour <= 7 && tc.PMSeen:
		return (ct.Hour+12)*60 + ct.Minute
	default:
		return ct.Hour*60 + ct.Minute
	}
}

// timeMatch is the time span located on a session line.
type timeMatch struct {
	start, end int    // byte span of the match within the line
	first      string // first (or only) clock token
	second     string // second clock token, "" for a single time
}

// findTime locates a time range or, failing that, a single clock time.
func findTime(s string) (timeMatch, bool) {
	if loc := reTimeRange.FindStringSubmatchIndex(s); loc != nil {
		return timeMatch{
			start:  loc[0],
			end:    loc[1],
			first:  s[loc[2]:loc[3]],
			second: s[loc[4]:loc[5]],
		}, true
	}
	if loc := reTimeOnly.FindStringSubmatchIndex(s); loc != nil {
		return timeMatch{start: loc[0], end: loc[1], first: s[loc[2]:loc[3]]}, true
	}
	return timeMatch{}, false
}
