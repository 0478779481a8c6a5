package ocr

import "regexp"

var (
	reDateish = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2}\b|\bday\s*\d+\b|\b(?:mon|tues?|wed(?:nes)?|thur?s?|fri|sat(?:ur)?|sun)day\b`)
	reTimeish = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	reSchedKw = regexp.MustCompile(`(?i)\b(?:session|program|schedule|agenda|speaker|keynote|workshop|registration|welcome|break|lunch)\b`)
)

// heuristicConfidence scores decoded text by how much it looks like an event
// schedule: date tokens, clock times, agenda vocabulary, enough content.
// Reported in logs only; low scores flag pages worth re-scanning.
func heuristicConfidence(txt string) float32 {
	score := float32(0.2) // base
	if reDateish.MatchString(txt) {
		score += 0.2
	}
	if reTimeish.MatchString(txt) {
		score += 0.25
	}
	if reSchedKw.MatchString(txt) {
		score += 0.15
	}
	if len(txt) > 200 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
