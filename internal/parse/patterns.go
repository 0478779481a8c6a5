package parse

import (
	"regexp"
	"strings"
)

// Pattern families are kept as small, independently testable predicates and
// extractors. Brochures are wildly inconsistent, so all of these are
// deliberately loose; classification precedence (time beats date) does the
// disambiguation.
var (
	// "May 30", "May 30th, 2025", "September 2"
	reMonthDay = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t|tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+\d{1,2}(?:st|nd|rd|th)?(?:\s*,\s*\d{4})?\b`)
	// "5/30/2025", "30-05-25", "2025-05-30"
	reNumericDate = regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b|\b\d{4}[-/]\d{1,2}[-/]\d{1,2}\b`)
	// "Thursday", "Thu"
	reWeekday = regexp.MustCompile(`(?i)\b(?:mon|tue(?:s)?|wed(?:nes)?|thu(?:r|rs)?|fri|sat(?:ur)?|sun)(?:day)?\b`)
	// "Day 1", "DAY 2"
	reDayN = regexp.MustCompile(`(?i)\bday\s*\d+\b`)

	// clock time, 12- or 24-hour, optional meridiem ("9:00", "9:00 am", "14:30")
	reClock = regexp.MustCompile(`(?i)\b([01]?\d|2[0-3]):([0-5]\d)\s*(a\.?m\.?|p\.?m\.?)?`)
	// "9:00 AM - 10:00 AM", "14:30-15:00", "9:00 to 10:30"
	reTimeRange = regexp.MustCompile(`(?i)\b((?:[01]?\d|2[0-3]):[0-5]\d\s*(?:a\.?m\.?|p\.?m\.?)?)\s*(?:-|–|—|to)\s*((?:[01]?\d|2[0-3]):[0-5]\d\s*(?:a\.?m\.?|p\.?m\.?)?)`)
	reTimeOnly  = regexp.MustCompile(`(?i)\b((?:[01]?\d|2[0-3]):[0-5]\d\s*(?:a\.?m\.?|p\.?m\.?)?)`)

	// labeled lines ("Speaker: X", "Room: Y") strip their label; unlabeled
	// references ("Room 204", "Dr. Jane Doe") are kept whole
	reSpeakerLabel = regexp.MustCompile(`(?i)^(?:speaker|presenter|organizer|moderator|by)\s*:\s*(.+)$`)
	reSpeakerBy    = regexp.MustCompile(`(?i)^(?:presented\s+by|by|with)\s+(.+)$`)
	reLocationLine = regexp.MustCompile(`(?i)^(?:room|location|venue|hall|place|auditorium|theater|theatre)\s*:\s*(.+)$`)
	reHonorific    = regexp.MustCompile(`\b(?:Dr|Prof|Professor|Mr|Ms|Mrs)\.?\s+[A-Z][\w.'-]+(?:\s+[A-Z][\w.'-]+)*`)
	reLocationWord = regexp.MustCompile(`(?i)\b(?:room|hall|ballroom|auditorium|theater|theatre|lab|stage|center|centre|building|floor|suite|pavilion)\b`)

	// trailing clauses on a session line
	reTrailingParen = regexp.MustCompile(`\(([^()]*)\)\s*$`)
	reTrailingBy    = regexp.MustCompile(`(?i)(?:^|[\s,])(?:by|with)\s+(.+)$`)

	// field separators inside a session line remainder
	reFieldSep = regexp.MustCompile(`\s+(?:-|–|—|\||/)\s+`)

	reSpaces   = regexp.MustCompile(`\s+`)
	reEdgeJunk = regexp.MustCompile(`^[\s\-–—:;,|/]+|[\s\-–—:;,|/]+$`)
)

// HasDatePattern reports whether s contains any recognized date token.
func HasDatePattern(s string) bool {
	return reMonthDay.MatchString(s) || reNumericDate.MatchString(s) ||
		reDayN.MatchString(s) || reWeekday.MatchString(s)
}

// HasTimePattern reports whether s contains a clock time.
func HasTimePattern(s string) bool {
	return reClock.MatchString(s)
}

// LooksLikeSpeaker reports whether s reads as a speaker/organizer reference.
func LooksLikeSpeaker(s string) bool {
	return reSpeakerLabel.MatchString(s) || reSpeakerBy.MatchString(s) || reHonorific.MatchString(s)
}

// LooksLikeLocation reports whether s reads as a room/venue reference.
func LooksLikeLocation(s string) bool {
	return reLocationLine.MatchString(s) || reLocationWord.MatchString(s)
}

// CleanField collapses whitespace and trims stray separator punctuation left
// over after pattern spans are cut out of a line.
func CleanField(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	s = reEdgeJunk.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
