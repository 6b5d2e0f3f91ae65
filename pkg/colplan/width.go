package colplan

import "strings"

// Empirically determined character widths in Calibri 11, the default font
// of the generated workbooks. Font rendering depends somewhat on the PC
// that opens the file, so these are estimates, not pixel-exact. Only basic
// ASCII is tabled; anything else is assumed digit-sized.
var charGroups = map[string]float64{
	"0123456789agkvxyEFSTYZ#$*+<=>?^_|~": 203.01 / 28,
	"bdehnopquBCKPRX":                    232.01 / 28,
	`cszL"/\`:                            174.01 / 28,
	"frtJ!()-[]{}":                       145.01 / 28,
	"ijlI,.:;`":                          116.01 / 28,
	"mM":                                 348.01 / 28,
	"w%":                                 319.01 / 28,
	"ADGHUV":                             261.01 / 28,
	"NOQ&":                               290.01 / 28,
	"W@":                                 377.01 / 28,
	"' ":                                 87.01 / 28,
}

var boldCharGroups = map[string]float64{
	`0123456789agkvxyEFSTZ"#$*+<=>?^_|~`: 203.01 / 28,
	"bdehnopquBCKPRXY":                   232.01 / 28,
	`cszL/\`:                             174.01 / 28,
	"frtJ!()-[]`{}":                      145.01 / 28,
	"ijlI',.:;":                          116.01 / 28,
	"m":                                  348.01 / 28,
	"w%&":                                319.01 / 28,
	"ADHV":                               261.01 / 28,
	"GNOQU":                              290.01 / 28,
	"M@":                                 377.01 / 28,
	"W":                                  406.01 / 28,
	" ":                                  87.01 / 28,
}

var (
	pixelWidths     = expandGroups(charGroups)
	boldPixelWidths = expandGroups(boldCharGroups)
)

func expandGroups(groups map[string]float64) map[rune]float64 {
	widths := make(map[rune]float64)
	for group, w := range groups {
		for _, r := range group {
			widths[r] = w
		}
	}
	return widths
}

// colWidthFromPixels converts pixels to the user-facing units Excel shows.
func colWidthFromPixels(px float64) float64 {
	// Excel has a mysterious fudge factor when autofitting.
	if px > 34 {
		px--
	}
	if px > 62 {
		px--
	}
	// The first unit of column width is 12 pixels; each subsequent unit is 7.
	if px < 12 {
		return px / 12.0
	}
	return (px - 5) / 7.0
}

func textWidth(s string, bold bool) float64 {
	widths := pixelWidths
	if bold {
		widths = boldPixelWidths
	}
	px := 7.0
	for _, r := range s {
		if w, ok := widths[r]; ok {
			px += w
		} else {
			px += widths['0']
		}
	}
	return colWidthFromPixels(px)
}

// numericWidth assumes the widest rendering the declared precision allows:
// every digit present, a leading sign, the full decimal tail and grouping
// separators when the format carries them. Deriving the width from the
// declaration instead of the data keeps the conversion to a single pass.
// Digits do not change width when bold in Calibri 11.
func numericWidth(digits, decimals int, commas bool) float64 {
	idigits := digits - decimals
	if idigits < 1 {
		idigits = 1
	}
	px := 7.0 + float64(idigits+decimals)*pixelWidths['0']
	if commas {
		px += float64((idigits-1)/3) * pixelWidths[',']
	}
	if decimals > 0 {
		px += pixelWidths['.']
	}
	px += pixelWidths['-']
	return colWidthFromPixels(px)
}

// characterWidth is the worst case for a character column: the declared
// length filled with digit-class characters.
func characterWidth(length int) float64 {
	return colWidthFromPixels(7.0 + float64(length)*pixelWidths['0'])
}

// dateWidth sets aside enough room for an 8-digit date with separators.
func dateWidth() float64 {
	return colWidthFromPixels(7.0 + 8*pixelWidths['0'] + 2*pixelWidths['/'])
}

// timeWidth sets aside enough room for an HH:MM:SS AM/PM time.
func timeWidth() float64 {
	px := 7.0 + 6*pixelWidths['0'] + 2*pixelWidths[':'] + pixelWidths[' ']
	px += maxWidth(pixelWidths['A'], pixelWidths['P']) + pixelWidths['M']
	return colWidthFromPixels(px)
}

// timestampWidth sets aside enough room for MM/DD/YY HH:MM:SS AM/PM.
func timestampWidth() float64 {
	px := 7.0 + 12*pixelWidths['0'] + 2*pixelWidths['/'] + 2*pixelWidths[':'] + 2*pixelWidths[' ']
	px += maxWidth(pixelWidths['A'], pixelWidths['P']) + pixelWidths['M']
	return colWidthFromPixels(px)
}

func maxWidth(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// estimateWidth computes the rendering width of a column from its heading
// and its worst-case data, whichever is wider.
func estimateWidth(d Descriptor, heading, format string, coerce Coerce) float64 {
	w := textWidth(heading, true)
	var dataW float64
	switch {
	case coerce == CoerceDate || d.Type == FieldDate:
		dataW = dateWidth()
	case coerce == CoerceTime || d.Type == FieldTime:
		dataW = timeWidth()
	case d.Type == FieldTimestamp:
		dataW = timestampWidth()
	case d.Type == FieldNumeric:
		dataW = numericWidth(d.Digits, d.Decimals, strings.Contains(format, ","))
	default:
		dataW = characterWidth(d.Length)
	}
	if dataW > w {
		w = dataW
	}
	return w
}
