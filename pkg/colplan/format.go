package colplan

import "strings"

// Fixed cell formats shared by every run.
const (
	FormatDate      = "m/d/yyyy"
	FormatTime      = "h:mm:ss AM/PM"
	FormatTimestamp = "m/d/yy h:mm:ss AM/PM"
	FormatText      = "@"
)

// Coerce says whether a column's raw numeric data is reinterpreted as a
// date or time value when written.
type Coerce int

const (
	CoerceNone Coerce = iota
	CoerceDate
	CoerceTime
)

// Edit words that mark an 8,0 numeric field as a yyyymmdd date or a 6,0
// numeric field as an hhmmss time. The provider may hand the word with the
// DDS quotes still attached; they are stripped before lookup.
var (
	dateEditWords = map[string]bool{
		"    -  -  ": true,
		"    /  /  ": true,
	}
	timeEditWords = map[string]bool{
		"  .  .  ": true,
		"  :  :  ": true,
	}
)

func trimEditWord(w string) string {
	if len(w) >= 2 && strings.HasPrefix(w, "'") && strings.HasSuffix(w, "'") {
		return w[1 : len(w)-1]
	}
	return w
}

func looksLikeDate(d Descriptor) bool {
	return d.Type == FieldNumeric && d.Digits == 8 && d.Decimals == 0 &&
		dateEditWords[trimEditWord(d.EditWord)]
}

func looksLikeTime(d Descriptor) bool {
	return d.Type == FieldNumeric && d.Digits == 6 && d.Decimals == 0 &&
		timeEditWords[trimEditWord(d.EditWord)]
}

// defaultNumFormat builds the fixed numeric format for a decimal count.
func defaultNumFormat(decimals int, commas bool) string {
	integers := "0"
	if commas {
		integers = "#,##0"
	}
	if decimals > 0 {
		return integers + "." + strings.Repeat("0", decimals)
	}
	return integers
}

// editCodeFormat maps an edit code to a positive;negative;zero format
// template. Codes 1, 2, 3 and 4 render unsigned; N, O, P and Q carry a
// minus sign. 1, 2, N and O group thousands. 1, 3, N and P keep a digit
// when the value is zero, the rest show nothing. Unsupported codes fall
// back to the default numeric format.
func editCodeFormat(code string, decimals int) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) != 1 || !strings.Contains("1234nopq", code) {
		return defaultNumFormat(decimals, false)
	}
	sign := ""
	if strings.Contains("nopq", code) {
		sign = "-"
	}
	integers := "#"
	if strings.Contains("12no", code) {
		integers = "#,###"
	}
	decs := ""
	if decimals > 0 {
		decs = "." + strings.Repeat("0", decimals)
	}
	positive := integers + decs
	negative := sign + positive
	zero := ""
	if strings.Contains("13np", code) {
		zero = positive[:len(positive)-1] + "0"
	}
	return strings.Join([]string{positive, negative, zero}, ";")
}

// resolveFormat decides the effective cell format for a column. First match
// wins: an explicit format directive dominates everything, date/time
// coercion dominates edit codes, character columns default to text format
// so that digit-only data survives a visit in Excel.
func resolveFormat(d Descriptor, dir Directives) (format string, isText bool, coerce Coerce) {
	switch {
	case dir.HasFormat:
		return dir.Format, false, CoerceNone
	case looksLikeDate(d):
		return FormatDate, false, CoerceDate
	case looksLikeTime(d):
		return FormatTime, false, CoerceTime
	}
	switch d.Type {
	case FieldNumeric:
		if strings.TrimSpace(d.EditCode) != "" {
			return editCodeFormat(d.EditCode, d.Decimals), false, CoerceNone
		}
		return defaultNumFormat(d.Decimals, false), false, CoerceNone
	case FieldDate:
		return FormatDate, false, CoerceNone
	case FieldTime:
		return FormatTime, false, CoerceNone
	case FieldTimestamp:
		return FormatTimestamp, false, CoerceNone
	default:
		return "", true, CoerceNone
	}
}
