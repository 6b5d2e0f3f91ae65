package colplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDescriptors() []Descriptor {
	return []Descriptor{
		{Name: "CUSNUM", Type: FieldNumeric, Digits: 6, Headings: []string{"Customer", "Number"}},
		{Name: "PASSWD", Type: FieldCharacter, Length: 10, Headings: []string{"*SKIP"}},
		{Name: "CUSNAM", Type: FieldCharacter, Length: 30},
		{Name: "BALANCE", Type: FieldNumeric, Digits: 9, Decimals: 2, EditCode: "1",
			Headings: []string{"Balance"}, Text: "zero=blank"},
		{Name: "NOTES", Type: FieldCharacter, Length: 120, Headings: []string{"*BLANK"}, Text: "wrap=on"},
	}
}

func TestBuildSkipsAndOrdinals(t *testing.T) {
	p := Build(sampleDescriptors(), "")
	require.Len(t, p.Columns, 4)
	assert.Equal(t, -1, p.BreakField)

	// The skipped column keeps its slot in the source tuple.
	assert.Equal(t, []int{0, 2, 3, 4}, []int{
		p.Columns[0].Source, p.Columns[1].Source, p.Columns[2].Source, p.Columns[3].Source,
	})
	for i, c := range p.Columns {
		assert.Equal(t, i, c.Ordinal)
	}
}

func TestBuildHeadings(t *testing.T) {
	p := Build(sampleDescriptors(), "")
	require.Len(t, p.Columns, 4)

	assert.Equal(t, "Customer Number", p.Columns[0].Heading, "heading lines join with a space")
	assert.Equal(t, "CUSNAM", p.Columns[1].Heading, "missing heading falls back to the field name")
	assert.Equal(t, "Balance", p.Columns[2].Heading)
	assert.Equal(t, "", p.Columns[3].Heading, "*BLANK requests an empty heading")
}

func TestBuildDirectivesApplied(t *testing.T) {
	p := Build(sampleDescriptors(), "")
	require.Len(t, p.Columns, 4)

	balance := p.Columns[2]
	assert.True(t, balance.ZeroBlank)
	assert.True(t, balance.Numeric)
	assert.Equal(t, 2, balance.Decimals)
	assert.Equal(t, "#,###.00;#,###.00;#,###.00", balance.Format)

	notes := p.Columns[3]
	assert.True(t, notes.Wrap)
	assert.True(t, notes.IsText)
}

func TestBuildExplicitWidthAndFormat(t *testing.T) {
	descs := []Descriptor{
		{Name: "AMT", Type: FieldNumeric, Digits: 11, Decimals: 2,
			Text: `width=15 format="#,##0.00"`},
	}
	p := Build(descs, "")
	require.Len(t, p.Columns, 1)
	assert.Equal(t, 15.0, p.Columns[0].Width)
	assert.Equal(t, "#,##0.00", p.Columns[0].Format)
}

func TestBuildBreakField(t *testing.T) {
	t.Run("resolved case insensitively", func(t *testing.T) {
		p := Build(sampleDescriptors(), "break on cusnam")
		assert.Equal(t, 2, p.BreakField)
	})
	t.Run("skipped column still breaks", func(t *testing.T) {
		p := Build(sampleDescriptors(), "break on PASSWD")
		assert.Equal(t, 1, p.BreakField)
	})
	t.Run("unknown field ignored", func(t *testing.T) {
		p := Build(sampleDescriptors(), "break on NOPE")
		assert.Equal(t, -1, p.BreakField)
	})
}

func TestBuildDateCoercion(t *testing.T) {
	descs := []Descriptor{
		{Name: "ORDDAT", Type: FieldNumeric, Digits: 8, EditWord: "    /  /  "},
	}
	p := Build(descs, "")
	require.Len(t, p.Columns, 1)
	assert.Equal(t, CoerceDate, p.Columns[0].Coerce)
	assert.Equal(t, FormatDate, p.Columns[0].Format)
}
