package sheetcopy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/tablecopy/pkg/colplan"
)

func assemblePlan() *colplan.Plan {
	return &colplan.Plan{
		Columns: []colplan.ColumnPlan{
			{Source: 0, Ordinal: 0, Name: "ID", Heading: "Id", Width: 8},
			{Source: 1, Ordinal: 1, Name: "NAME", Heading: "Name", Width: 30},
		},
		BreakField: -1,
	}
}

func TestAssembleLayout(t *testing.T) {
	sheet := newFakeSheet()
	rows := &sliceRows{rows: [][]interface{}{
		{int64(1), "alice"},
		{int64(2), "bob"},
	}}

	err := Assemble(sheet, assemblePlan(), []string{"Monthly report", "August 2026"}, rows)
	require.NoError(t, err)

	assert.Equal(t, 8.0, sheet.widths[1])
	assert.Equal(t, 30.0, sheet.widths[2])

	// Header rows 1 and 2, blank row 3, headings on 4, data from 5.
	assert.Equal(t, "Monthly report", sheet.rows[1][0].Value)
	assert.Equal(t, "August 2026", sheet.rows[2][0].Value)
	assert.True(t, sheet.rows[1][0].Style.Bold)
	assert.NotContains(t, sheet.rows, 3)
	assert.Equal(t, "Id", sheet.rows[4][0].Value)
	assert.Equal(t, CellStyle{Bold: true, Wrap: true}, sheet.rows[4][1].Style)
	assert.Equal(t, "alice", sheet.rows[5][1].Value)
	assert.Equal(t, "bob", sheet.rows[6][1].Value)
}

func TestAssembleNoHeaderRows(t *testing.T) {
	sheet := newFakeSheet()
	rows := &sliceRows{rows: [][]interface{}{{int64(1), "alice"}}}

	err := Assemble(sheet, assemblePlan(), nil, rows)
	require.NoError(t, err)

	// No separator row without header rows: headings land on row 1.
	assert.Equal(t, "Id", sheet.rows[1][0].Value)
	assert.Equal(t, "alice", sheet.rows[2][1].Value)
}

func TestAssembleWidthsBeforeRows(t *testing.T) {
	sheet := newFakeSheet()
	rows := &sliceRows{rows: [][]interface{}{{int64(1), "alice"}}}

	err := Assemble(sheet, assemblePlan(), []string{"h"}, rows)
	require.NoError(t, err)

	sawRow := false
	for _, call := range sheet.order {
		if call == "row" {
			sawRow = true
		}
		if call == "width" {
			assert.False(t, sawRow, "column widths must be set before any row")
		}
	}
}

func TestAssembleCapsHeaderRows(t *testing.T) {
	sheet := newFakeSheet()
	rows := &sliceRows{}

	headers := make([]string, MaxHeaderRows+5)
	for i := range headers {
		headers[i] = fmt.Sprintf("line %d", i+1)
	}
	err := Assemble(sheet, assemblePlan(), headers, rows)
	require.NoError(t, err)

	assert.Contains(t, sheet.rows, MaxHeaderRows)
	// Row 39 is the separator, 40 the headings.
	assert.NotContains(t, sheet.rows, MaxHeaderRows+1)
	assert.Equal(t, "Id", sheet.rows[MaxHeaderRows+2][0].Value)
}
