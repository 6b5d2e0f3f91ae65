package metadata

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/locvowork/tablecopy/pkg/colplan"
)

// rowIterator adapts sql.Rows to the streamer's forward-only contract.
type rowIterator struct {
	rows  *sql.Rows
	descs []colplan.Descriptor
}

func (it *rowIterator) Next() ([]interface{}, bool, error) {
	if !it.rows.Next() {
		if err := it.rows.Err(); err != nil {
			return nil, false, fmt.Errorf("advance cursor: %w", err)
		}
		return nil, false, nil
	}
	raw := make([]interface{}, len(it.descs))
	ptrs := make([]interface{}, len(it.descs))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := it.rows.Scan(ptrs...); err != nil {
		return nil, false, fmt.Errorf("scan row: %w", err)
	}
	out := make([]interface{}, len(raw))
	for i, v := range raw {
		out[i] = normalizeValue(v, it.descs[i])
	}
	return out, true, nil
}

func (it *rowIterator) Close() error {
	return it.rows.Close()
}

// normalizeValue post-processes a scanned value the way the streamer
// expects: strings right-trimmed, zero-decimal numerics as int64, other
// numerics as float64, times-of-day as a day fraction.
func normalizeValue(v interface{}, d colplan.Descriptor) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val
	case []byte:
		return normalizeString(string(val), d)
	case string:
		return normalizeString(val, d)
	case float64:
		if d.Type == colplan.FieldNumeric && d.Decimals == 0 {
			return int64(val)
		}
		return val
	case int64:
		if d.Type == colplan.FieldNumeric && d.Decimals > 0 {
			return float64(val)
		}
		return val
	case bool:
		if val {
			return int64(1)
		}
		return int64(0)
	}
	return v
}

func normalizeString(s string, d colplan.Descriptor) interface{} {
	switch d.Type {
	case colplan.FieldNumeric:
		if d.Decimals == 0 {
			if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
				return n
			}
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			if d.Decimals == 0 {
				return int64(f)
			}
			return f
		}
		return strings.TrimRight(s, " ")
	case colplan.FieldTime:
		if frac, ok := timeOfDayFraction(s); ok {
			return frac
		}
		return strings.TrimRight(s, " ")
	default:
		return strings.TrimRight(s, " ")
	}
}

// timeOfDayFraction converts HH:MM:SS (fractional seconds and zone offset
// ignored) to the serial day fraction spreadsheets use for times.
func timeOfDayFraction(s string) (float64, bool) {
	if len(s) < 8 {
		return 0, false
	}
	h, err1 := strconv.Atoi(s[0:2])
	m, err2 := strconv.Atoi(s[3:5])
	sec, err3 := strconv.Atoi(s[6:8])
	if err1 != nil || err2 != nil || err3 != nil || s[2] != ':' || s[5] != ':' {
		return 0, false
	}
	return float64(h*3600+m*60+sec) / 86400.0, true
}
