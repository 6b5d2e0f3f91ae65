// Package metadata supplies table metadata and forward-only row access
// from a Postgres database. Column descriptors are assembled from
// information_schema plus the DDS-style keywords embedded in column
// comments; the table comment carries the record-level annotation.
package metadata

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"

	"github.com/locvowork/tablecopy/pkg/colplan"
	"github.com/locvowork/tablecopy/pkg/sheetcopy"
)

type Provider struct {
	db *sql.DB
}

func NewProvider(db *sql.DB) *Provider {
	return &Provider{db: db}
}

var identPat = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// SplitQualified parses a table reference of the form TABLE, SCHEMA.TABLE
// or SCHEMA/TABLE. An unqualified name resolves to the public schema.
func SplitQualified(name string) (schema, table string, err error) {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '.' || r == '/'
	})
	switch len(parts) {
	case 1:
		schema, table = "public", parts[0]
	case 2:
		schema, table = parts[0], parts[1]
	default:
		return "", "", fmt.Errorf("could not parse table name %q", name)
	}
	schema = strings.ToLower(schema)
	table = strings.ToLower(table)
	if !identPat.MatchString(schema) || !identPat.MatchString(table) {
		return "", "", fmt.Errorf("invalid table name %q", name)
	}
	return schema, table, nil
}

const descriptorQuery = `
select c.column_name,
       c.data_type,
       coalesce(c.numeric_precision, 0),
       coalesce(c.numeric_precision_radix, 10),
       coalesce(c.numeric_scale, 0),
       coalesce(c.character_maximum_length, 0),
       coalesce(col_description(pc.oid, c.ordinal_position), '')
  from information_schema.columns c
  join pg_catalog.pg_namespace pn on pn.nspname = c.table_schema
  join pg_catalog.pg_class pc on pc.relnamespace = pn.oid and pc.relname = c.table_name
 where c.table_schema = $1 and c.table_name = $2
 order by c.ordinal_position`

const recordTextQuery = `
select coalesce(obj_description(pc.oid, 'pg_class'), '')
  from pg_catalog.pg_class pc
  join pg_catalog.pg_namespace pn on pn.oid = pc.relnamespace
 where pn.nspname = $1 and pc.relname = $2`

// Descriptors returns the ordered column descriptors of a table and the
// record-level annotation text.
func (p *Provider) Descriptors(ctx context.Context, schema, table string) ([]colplan.Descriptor, string, error) {
	rows, err := p.db.QueryContext(ctx, descriptorQuery, schema, table)
	if err != nil {
		return nil, "", fmt.Errorf("query column metadata for %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	var descs []colplan.Descriptor
	for rows.Next() {
		var (
			name, dataType, comment       string
			precision, radix, scale, clen int
		)
		if err := rows.Scan(&name, &dataType, &precision, &radix, &scale, &clen, &comment); err != nil {
			return nil, "", fmt.Errorf("scan column metadata: %w", err)
		}
		cc := parseColumnComment(comment)
		d := colplan.Descriptor{
			Name:     strings.ToUpper(name),
			Headings: cc.headings,
			Text:     cc.text,
			EditCode: cc.editCode,
			EditWord: cc.editWord,
		}
		fillType(&d, dataType, precision, radix, scale, clen)
		descs = append(descs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("read column metadata: %w", err)
	}
	if len(descs) == 0 {
		return nil, "", fmt.Errorf("table %s.%s not found or has no columns", schema, table)
	}

	var recordText string
	if err := p.db.QueryRowContext(ctx, recordTextQuery, schema, table).Scan(&recordText); err != nil && err != sql.ErrNoRows {
		return nil, "", fmt.Errorf("query table comment for %s.%s: %w", schema, table, err)
	}
	return descs, recordText, nil
}

// fillType maps a Postgres type to the declared type, digits and decimals
// the plan builder works with. Binary-radix precision (integers, floats)
// is translated to decimal digit counts.
func fillType(d *colplan.Descriptor, dataType string, precision, radix, scale, charLen int) {
	switch dataType {
	case "smallint":
		d.Type, d.Digits = colplan.FieldNumeric, 5
	case "integer":
		d.Type, d.Digits = colplan.FieldNumeric, 10
	case "bigint":
		d.Type, d.Digits = colplan.FieldNumeric, 19
	case "real", "double precision":
		d.Type, d.Digits = colplan.FieldNumeric, 15
	case "numeric", "decimal":
		d.Type, d.Digits, d.Decimals = colplan.FieldNumeric, precision, scale
		if radix == 2 {
			d.Digits = precision * 3 / 10 // log10(2) ~ 0.3
		}
	case "date":
		d.Type = colplan.FieldDate
	case "time without time zone", "time with time zone":
		d.Type = colplan.FieldTime
	case "timestamp without time zone", "timestamp with time zone":
		d.Type = colplan.FieldTimestamp
	default:
		d.Type = colplan.FieldCharacter
		d.Length = charLen
		if d.Length == 0 {
			d.Length = 30 // unbounded text; assume a sensible width
		}
	}
}

// Rows opens a forward-only cursor over the table's data. Values are
// normalized per descriptor: character data right-trimmed, zero-decimal
// numerics as int64, the rest as float64.
func (p *Provider) Rows(ctx context.Context, schema, table string, descs []colplan.Descriptor) (sheetcopy.RowProvider, error) {
	query := fmt.Sprintf("select * from %s.%s", pq.QuoteIdentifier(schema), pq.QuoteIdentifier(table))
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("open %s.%s for reading: %w", schema, table, err)
	}
	return &rowIterator{rows: rows, descs: descs}, nil
}
