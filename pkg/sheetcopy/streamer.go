package sheetcopy

import (
	"fmt"
	"time"

	"github.com/locvowork/tablecopy/pkg/colplan"
)

// breakState tracks the last-seen value of the break field within one run.
// It is owned by the streamer for the duration of that run, which keeps
// repeated runs in one process independent of each other.
type breakState struct {
	source int
	seen   bool
	last   interface{}
}

// fires reports whether a blank row precedes the given row and updates the
// baseline unconditionally, so the first row never fires but establishes
// the value to compare against.
func (b *breakState) fires(row []interface{}) bool {
	if b.source < 0 || b.source >= len(row) {
		return false
	}
	v := row[b.source]
	fired := b.seen && v != b.last
	b.last = v
	b.seen = true
	return fired
}

// Streamer walks source rows in order, applying each column plan's
// coercion, zero-blank and wrap decisions and emitting data rows through
// the sheet. Skipped source columns are consumed but never emitted.
type Streamer struct {
	plan   *colplan.Plan
	styles []CellStyle
}

func NewStreamer(plan *colplan.Plan) *Streamer {
	s := &Streamer{
		plan:   plan,
		styles: make([]CellStyle, len(plan.Columns)),
	}
	for i, c := range plan.Columns {
		s.styles[i] = CellStyle{Wrap: c.Wrap, Text: c.IsText, NumFmt: c.Format}
	}
	return s
}

// Run streams every remaining source row starting at row startRow and
// returns the next free row number.
func (s *Streamer) Run(sheet Sheet, rows RowProvider, startRow int) (int, error) {
	brk := &breakState{source: s.plan.BreakField}
	rx := startRow
	for {
		row, ok, err := rows.Next()
		if err != nil {
			return rx, fmt.Errorf("read source row: %w", err)
		}
		if !ok {
			return rx, nil
		}
		if brk.fires(row) {
			rx++
		}
		cells := make([]Cell, len(s.plan.Columns))
		for i, c := range s.plan.Columns {
			cells[i] = s.renderCell(c, s.styles[i], row)
		}
		if err := sheet.WriteRow(rx, cells); err != nil {
			return rx, fmt.Errorf("write row %d: %w", rx, err)
		}
		rx++
	}
}

func (s *Streamer) renderCell(c colplan.ColumnPlan, style CellStyle, row []interface{}) Cell {
	if c.Source >= len(row) {
		return Cell{Style: style}
	}
	raw := row[c.Source]
	if raw == nil {
		return Cell{Style: style}
	}
	switch c.Coerce {
	case colplan.CoerceDate:
		n := asInt(raw)
		if n == 0 {
			return Cell{Style: style}
		}
		y, md := n/10000, n%10000
		d := time.Date(int(y), time.Month(md/100), int(md%100), 0, 0, 0, 0, time.UTC)
		return Cell{Value: d, Style: style}
	case colplan.CoerceTime:
		n := asInt(raw)
		if n == 0 {
			return Cell{Style: style}
		}
		h, ms := n/10000, n%10000
		secs := h*3600 + (ms/100)*60 + ms%100
		return Cell{Value: float64(secs) / 86400.0, Style: style}
	}
	if c.ZeroBlank && isZero(raw) {
		return Cell{Style: style}
	}
	return Cell{Value: raw, Style: style}
}

func asInt(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func isZero(v interface{}) bool {
	switch n := v.(type) {
	case int64:
		return n == 0
	case int:
		return n == 0
	case float64:
		return n == 0
	}
	return false
}
