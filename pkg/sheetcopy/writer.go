// Package sheetcopy streams source rows into a spreadsheet document
// according to a column plan. It owns the document layout (header rows,
// heading row, data body, break rows) but stays agnostic of the output
// container: writing cells is delegated to the Workbook/Sheet collaborator.
package sheetcopy

// CellStyle describes the rendering of one cell. The zero value is the
// general format with no emphasis.
type CellStyle struct {
	Bold bool
	Wrap bool
	// Text forces the spreadsheet text format so digit-only character
	// data is not converted to a number when the cell is visited.
	Text bool
	// NumFmt is the number format string, "" for the general format. It
	// is passed through verbatim and never validated here.
	NumFmt string
}

// Cell is a single value plus its style. A nil Value leaves the cell empty.
type Cell struct {
	Value interface{}
	Style CellStyle
}

// Sheet receives the rendered document. Rows arrive in strictly ascending
// order and skipped row numbers stay blank; column widths are set before
// any row is written. Coordinates are 1-based.
type Sheet interface {
	SetColWidth(col int, width float64) error
	WriteRow(row int, cells []Cell) error
}

// Workbook creates sheets and releases the underlying resources. Whether
// the output is a legacy binary or a zip-based container is the
// implementation's concern.
type Workbook interface {
	NewSheet(name string) (Sheet, error)
	Close() error
}

// RowProvider yields source rows as fixed-order tuples aligned to the
// column descriptors, including values for skipped columns. Values are
// normalized comparable scalars (string, int64, float64, time.Time) or nil
// for NULL. ok is false after the last row.
type RowProvider interface {
	Next() (row []interface{}, ok bool, err error)
	Close() error
}
