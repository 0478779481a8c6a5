package parse

// LineRole tags what a page line means to the extractor.
type LineRole int

const (
	RoleNoise LineRole = iota
	RoleDateHeader
	RoleSession
	RoleContinuation
)

func (r LineRole) String() string {
	switch r {
	case RoleDateHeader:
		return "date_header"
	case RoleSession:
		return "session"
	case RoleContinuation:
		return "continuation"
	default:
		return "noise"
	}
}

// RawLine is one trimmed, non-blank line of page text with its position.
type RawLine struct {
	Page    int
	Ordinal int // line index within the page's raw text
	Text    string
}

// ClassifiedLine pairs a raw line with its role.
type ClassifiedLine struct {
	RawLine
	Role LineRole
}

// ClassifyLine assigns a role given the role of the preceding non-blank line.
// A time pattern wins over a date pattern: the surrounding date is assumed to
// have been established by an earlier header.
func ClassifyLine(text string, prev LineRole) LineRole {
	switch {
	case HasTimePattern(text):
		return RoleSession
	case HasDatePattern(text):
		return RoleDateHeader
	case prev == RoleSession || prev == RoleContinuation:
		return RoleContinuation
	default:
		return RoleNoise
	}
}

// ClassifyPage splits one page of raw text into classified lines. Blank lines
// are dropped; they neither become entries nor break continuation adjacency.
// prev seeds the role chain so continuations can follow a session across a
// page boundary within the same file.
func ClassifyPage(page int, text string, prev LineRole) []ClassifiedLine {
	var out []ClassifiedLine
	start := 0
	ordinal := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '\n' {
			continue
		}
		line := trimLine(text[start:i])
		start = i + 1
		if line == "" {
			ordinal++
			continue
		}
		role := ClassifyLine(line, prev)
		out = append(out, ClassifiedLine{
			RawLine: RawLine{Page: page, Ordinal: ordinal, Text: line},
			Role:    role,
		})
		prev = role
		ordinal++
	}
	return out
}

func trimLine(s string) string {
	// cheap trim that also eats stray carriage returns from CRLF input
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\r') {
		j--
	}
	return s[i:j]
}
