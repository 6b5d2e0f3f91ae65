package colplan

import (
	"regexp"
	"strconv"
)

// Directives are the typed flags recognized inside free-form annotation
// text. Each pattern is matched independently, case-insensitively and
// unanchored; text around and between directives is ignored. Annotation
// strings are externally authored metadata, so nothing here ever fails:
// an absent or malformed directive just leaves the zero value.
type Directives struct {
	Width     int    // fixed column width, 0 when absent
	Format    string // verbatim cell format string
	HasFormat bool
	ZeroBlank bool
	Wrap      bool
}

var (
	widthPat  = regexp.MustCompile(`(?i)width=([1-9][0-9]*)`)
	formatPat = regexp.MustCompile(`(?i)format="(.*)"`)
	zeroPat   = regexp.MustCompile(`(?i)zero(s|es)?=blanks?`)
	wrapPat   = regexp.MustCompile(`(?i)wrap=(\*)?on`)
	breakPat  = regexp.MustCompile(`(?i)break on (\S+)`)
)

// ParseFieldDirectives extracts the field-level directives from one
// column's annotation text.
func ParseFieldDirectives(text string) Directives {
	var d Directives
	if m := widthPat.FindStringSubmatch(text); m != nil {
		d.Width, _ = strconv.Atoi(m[1])
	}
	if m := formatPat.FindStringSubmatch(text); m != nil {
		d.Format = m[1]
		d.HasFormat = true
	}
	d.ZeroBlank = zeroPat.MatchString(text)
	d.Wrap = wrapPat.MatchString(text)
	return d
}

// ParseBreakField extracts the break field name from the record-level
// annotation text, or "" when none is present. If the text names several
// break fields the last one wins.
func ParseBreakField(text string) string {
	ms := breakPat.FindAllStringSubmatch(text, -1)
	if len(ms) == 0 {
		return ""
	}
	return ms[len(ms)-1][1]
}
