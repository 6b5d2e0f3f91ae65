package colplan

// FieldType is the declared data type of a source column.
type FieldType int

const (
	FieldCharacter FieldType = iota
	FieldNumeric
	FieldDate
	FieldTime
	FieldTimestamp
)

// Descriptor carries the metadata of one source column as supplied by the
// metadata provider. It is read once per run and never mutated.
type Descriptor struct {
	Name     string
	Type     FieldType
	Digits   int // total digit count, numeric fields only
	Decimals int // decimal places, numeric fields only
	Length   int // byte length, character fields only
	Headings []string
	Text     string // free-form annotation attached to the column
	EditCode string
	EditWord string
}
