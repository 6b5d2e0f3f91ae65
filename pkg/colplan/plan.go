// Package colplan derives per-column rendering decisions from source table
// metadata: display heading, cell format, column width and the special
// behaviors (skip, zero-blank, wrap, date/time coercion, break field)
// requested through heading sentinels and free-text directives.
package colplan

import "strings"

// Heading sentinels understood by the plan builder.
const (
	sentinelSkip   = "*SKIP"
	sentinelBlank  = "*BLANK"
	sentinelBlanks = "*BLANKS"
)

// ColumnPlan is the immutable rendering decision for one output column.
// Source is the column's ordinal in the raw row tuple, Ordinal its position
// in the output document; the two diverge as soon as a column is skipped.
type ColumnPlan struct {
	Source    int
	Ordinal   int
	Name      string
	Heading   string
	Format    string
	Width     float64
	IsText    bool
	Numeric   bool
	Decimals  int
	ZeroBlank bool
	Wrap      bool
	Coerce    Coerce
}

// Plan is the full set of column decisions for one conversion run. It is
// owned by the run that built it and never shared.
type Plan struct {
	Columns []ColumnPlan
	// BreakField is the source ordinal of the field whose value change
	// inserts a blank row, or -1 when no break is configured.
	BreakField int
}

// Build derives a Plan from the ordered source column descriptors and the
// record-level annotation text. Columns whose heading is *SKIP produce no
// plan entry but keep their slot in the source tuple.
func Build(descs []Descriptor, recordText string) *Plan {
	p := &Plan{BreakField: -1}
	for i, d := range descs {
		heading, skip := resolveHeading(d)
		if skip {
			continue
		}
		dir := ParseFieldDirectives(d.Text)
		format, isText, coerce := resolveFormat(d, dir)
		width := float64(dir.Width)
		if dir.Width == 0 {
			width = estimateWidth(d, heading, format, coerce)
		}
		p.Columns = append(p.Columns, ColumnPlan{
			Source:    i,
			Ordinal:   len(p.Columns),
			Name:      d.Name,
			Heading:   heading,
			Format:    format,
			Width:     width,
			IsText:    isText,
			Numeric:   d.Type == FieldNumeric,
			Decimals:  d.Decimals,
			ZeroBlank: dir.ZeroBlank,
			Wrap:      dir.Wrap,
			Coerce:    coerce,
		})
	}
	if name := ParseBreakField(recordText); name != "" {
		for i, d := range descs {
			if strings.EqualFold(d.Name, name) {
				p.BreakField = i
				break
			}
		}
	}
	return p
}

// resolveHeading joins the non-blank heading lines with single spaces. An
// empty result falls back to the field name; the *BLANK sentinel asks for
// an empty heading outright, which is why blankness alone cannot express
// it. *SKIP excludes the column.
func resolveHeading(d Descriptor) (heading string, skip bool) {
	var parts []string
	for _, h := range d.Headings {
		if h = strings.TrimSpace(h); h != "" {
			parts = append(parts, h)
		}
	}
	joined := strings.Join(parts, " ")
	switch strings.ToUpper(joined) {
	case sentinelSkip:
		return "", true
	case sentinelBlank, sentinelBlanks:
		return "", false
	case "":
		return d.Name, false
	}
	return joined, false
}
