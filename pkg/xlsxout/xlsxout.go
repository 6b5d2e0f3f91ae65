// Package xlsxout implements the sheetcopy workbook collaborator on top of
// excelize stream writers, so large tables are written without holding the
// whole document in memory.
package xlsxout

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/locvowork/tablecopy/pkg/sheetcopy"
)

// Workbook writes one xlsx document. Styles are deduplicated through a
// string-keyed cache because excelize allocates a style slot per call.
type Workbook struct {
	file    *excelize.File
	writers []*excelize.StreamWriter
	styles  map[string]int
}

func New() *Workbook {
	return &Workbook{
		file:   excelize.NewFile(),
		styles: make(map[string]int),
	}
}

// NewSheet adds a sheet and returns its stream-backed writer. The first
// sheet replaces the default "Sheet1".
func (w *Workbook) NewSheet(name string) (sheetcopy.Sheet, error) {
	if len(w.writers) == 0 {
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return nil, fmt.Errorf("rename default sheet: %w", err)
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return nil, fmt.Errorf("add sheet %s: %w", name, err)
		}
	}
	sw, err := w.file.NewStreamWriter(name)
	if err != nil {
		return nil, fmt.Errorf("create stream writer for sheet %s: %w", name, err)
	}
	w.writers = append(w.writers, sw)
	return &sheet{wb: w, sw: sw}, nil
}

// WriteTo flushes every sheet and writes the finished document.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	if err := w.flush(); err != nil {
		return 0, err
	}
	return w.file.WriteTo(out)
}

// SaveAs flushes every sheet and saves the document to path.
func (w *Workbook) SaveAs(path string) error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.file.SaveAs(path)
}

func (w *Workbook) flush() error {
	for _, sw := range w.writers {
		if err := sw.Flush(); err != nil {
			return fmt.Errorf("flush stream writer: %w", err)
		}
	}
	return nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// styleID resolves a cell style to an excelize style slot, caching by key.
func (w *Workbook) styleID(cs sheetcopy.CellStyle) (int, error) {
	if cs == (sheetcopy.CellStyle{}) {
		return 0, nil
	}
	key := fmt.Sprintf("b:%v|w:%v|t:%v|n:%s", cs.Bold, cs.Wrap, cs.Text, cs.NumFmt)
	if id, ok := w.styles[key]; ok {
		return id, nil
	}
	style := &excelize.Style{}
	if cs.Bold {
		style.Font = &excelize.Font{Bold: true}
	}
	if cs.Wrap {
		style.Alignment = &excelize.Alignment{WrapText: true}
	}
	switch {
	case cs.Text:
		numFmt := "@"
		style.CustomNumFmt = &numFmt
	case cs.NumFmt != "":
		numFmt := cs.NumFmt
		style.CustomNumFmt = &numFmt
	}
	id, err := w.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("create style: %w", err)
	}
	w.styles[key] = id
	return id, nil
}

type sheet struct {
	wb *Workbook
	sw *excelize.StreamWriter
}

func (s *sheet) SetColWidth(col int, width float64) error {
	return s.sw.SetColWidth(col, col, width)
}

func (s *sheet) WriteRow(row int, cells []sheetcopy.Cell) error {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(cells))
	for i, c := range cells {
		id, err := s.wb.styleID(c.Style)
		if err != nil {
			return err
		}
		vals[i] = excelize.Cell{Value: c.Value, StyleID: id}
	}
	return s.sw.SetRow(ref, vals)
}
