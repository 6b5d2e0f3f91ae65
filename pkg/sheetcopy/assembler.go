package sheetcopy

import (
	"fmt"

	"github.com/locvowork/tablecopy/pkg/colplan"
)

// MaxHeaderRows caps the caller-supplied free-form header rows. The
// invocation layer hands over at most this many strings; extras are
// dropped.
const MaxHeaderRows = 38

// Assemble writes the whole document onto one sheet: the bold free-form
// header rows (with one separating blank row when any are present), the
// bold wrapped column-heading row, then the data body via the streamer.
// Column widths are applied once, before any row is written.
func Assemble(sheet Sheet, plan *colplan.Plan, headerRows []string, rows RowProvider) error {
	if len(headerRows) > MaxHeaderRows {
		headerRows = headerRows[:MaxHeaderRows]
	}
	for i, c := range plan.Columns {
		if err := sheet.SetColWidth(i+1, c.Width); err != nil {
			return fmt.Errorf("set width of column %d: %w", i+1, err)
		}
	}

	rx := 1
	for _, line := range headerRows {
		cells := []Cell{{Value: line, Style: CellStyle{Bold: true}}}
		if err := sheet.WriteRow(rx, cells); err != nil {
			return fmt.Errorf("write header row %d: %w", rx, err)
		}
		rx++
	}
	if len(headerRows) > 0 {
		rx++
	}

	headings := make([]Cell, len(plan.Columns))
	for i, c := range plan.Columns {
		headings[i] = Cell{Value: c.Heading, Style: CellStyle{Bold: true, Wrap: true}}
	}
	if err := sheet.WriteRow(rx, headings); err != nil {
		return fmt.Errorf("write heading row: %w", err)
	}
	rx++

	_, err := NewStreamer(plan).Run(sheet, rows, rx)
	return err
}
