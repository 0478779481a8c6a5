package parse

// SessionFields holds the candidate fields pulled from one session line.
// Speaker and Location stay "" until something fills them; the accumulator
// substitutes the unknown marker when emitting.
type SessionFields struct {
	TimeSlots    string
	StartMinutes int
	SessionName  string
	Speaker      string
	Location     string
}

// ExtractSession pulls the time span from a session line and splits the
// remainder into session name, speaker, and location. Returns ok=false when
// no usable session text remains after the time span is removed; such lines
// produce no record.
func ExtractSession(line RawLine, tc *TimeContext) (SessionFields, bool) {
	tm, ok := findTime(line.Text)
	if !ok {
		return SessionFields{}, false
	}

	f := SessionFields{
		TimeSlots:    CleanField(line.Text[tm.start:tm.end]),
		StartMinutes: TimeSentinel,
	}
	if ct, ok := ParseClockTime(tm.first); ok {
		f.StartMinutes = tc.Resolve(ct)
	}
	if tm.second != "" {
		// resolve the end time too so its meridiem feeds the continuity state
		if ct, ok := ParseClockTime(tm.second); ok {
			tc.Resolve(ct)
		}
	}

	remainder := CleanField(line.Text[:tm.start] + " " + line.Text[tm.end:])

	// trailing parenthetical is conventionally the room/venue
	if m := reTrailingParen.FindStringSubmatchIndex(remainder); m != nil {
		if v := CleanField(remainder[m[2]:m[3]]); v != "" {
			f.Location = v
		}
		remainder = CleanField(remainder[:m[0]])
	}
	// trailing "by <Name>" / "with <Name>" is the speaker
	if m := reTrailingBy.FindStringSubmatchIndex(remainder); m != nil {
		if v := CleanField(remainder[m[2]:m[3]]); v != "" {
			f.Speaker = v
			remainder = CleanField(remainder[:m[0]])
		}
	}

	parts := reFieldSep.Split(remainder, -1)
	name := CleanField(parts[0])
	for _, p := range parts[1:] {
		p = CleanField(p)
		if p == "" {
			continue
		}
		switch {
		case f.Speaker == "" && LooksLikeSpeaker(p):
			f.Speaker = stripSpeakerLabel(p)
		case f.Location == "" && LooksLikeLocation(p):
			f.Location = stripLocationLabel(p)
		default:
			// not confidently splittable: keep it as part of the name
			if name == "" {
				name = p
			} else {
				name += " - " + p
			}
		}
	}

	if name == "" {
		return SessionFields{}, false
	}
	f.SessionName = name
	return f, true
}

// ExtractDateText returns the date text a header line establishes.
func ExtractDateText(line RawLine) string {
	return CleanField(line.Text)
}

// FillFromContinuation applies one continuation line to missing speaker or
// location fields. Returns true when the line was consumed.
func FillFromContinuation(f *SessionFields, text string) bool {
	if f.Speaker == "" {
		if m := reSpeakerLabel.FindStringSubmatch(text); m != nil {
			if v := CleanField(m[1]); v != "" {
				f.Speaker = v
				return true
			}
		}
		if m := reSpeakerBy.FindStringSubmatch(text); m != nil {
			if v := CleanField(m[1]); v != "" {
				f.Speaker = v
				return true
			}
		}
		if m := reHonorific.FindString(text); m != "" && !reLocationLine.MatchString(text) {
			f.Speaker = CleanField(m)
			return true
		}
	}
	if f.Location == "" {
		if m := reLocationLine.FindStringSubmatch(text); m != nil {
			if v := CleanField(m[1]); v != "" {
				f.Location = v
				return true
			}
		}
		if reLocationWord.MatchString(text) {
			f.Location = CleanField(text)
			return true
		}
	}
	return false
}

func stripSpeakerLabel(s string) string {
	if m := reSpeakerLabel.FindStringSubmatch(s); m != nil {
		return CleanField(m[1])
	}
	if m := reSpeakerBy.FindStringSubmatch(s); m != nil {
		return CleanField(m[1])
	}
	return s
}

func stripLocationLabel(s string) string {
	if m := reLocationLine.FindStringSubmatch(s); m != nil {
		return CleanField(m[1])
	}
	return s
}
