package metadata

import (
	"regexp"
	"strings"
)

// Column comments carry DDS-style keywords alongside free-text directives,
// for example:
//
//	COLHDG('Customer' 'Number') EDTCDE(1) width=12 zero=blank
//	COLHDG('Order' 'Date') EDTWRD('    /  /  ')
//
// Keyword arguments are single-quoted; whatever is left after stripping the
// keywords is the column's free-text annotation.
var (
	colhdgPat = regexp.MustCompile(`(?i)COLHDG\(([^)]*)\)`)
	edtcdePat = regexp.MustCompile(`(?i)EDTCDE\(\s*'?([0-9A-Za-z])'?\s*\)`)
	edtwrdPat = regexp.MustCompile(`(?i)EDTWRD\('([^']*)'\)`)
	quotedPat = regexp.MustCompile(`'([^']*)'`)
)

type columnComment struct {
	headings []string
	editCode string
	editWord string
	text     string
}

func parseColumnComment(comment string) columnComment {
	var cc columnComment
	if m := colhdgPat.FindStringSubmatch(comment); m != nil {
		for _, q := range quotedPat.FindAllStringSubmatch(m[1], -1) {
			cc.headings = append(cc.headings, q[1])
		}
		if len(cc.headings) == 0 {
			if arg := strings.TrimSpace(m[1]); arg != "" {
				cc.headings = []string{arg}
			}
		}
	}
	if m := edtcdePat.FindStringSubmatch(comment); m != nil {
		cc.editCode = m[1]
	}
	if m := edtwrdPat.FindStringSubmatch(comment); m != nil {
		cc.editWord = m[1]
	}

	text := colhdgPat.ReplaceAllString(comment, "")
	text = edtcdePat.ReplaceAllString(text, "")
	text = edtwrdPat.ReplaceAllString(text, "")
	cc.text = strings.TrimSpace(text)
	return cc
}
