// Package format renders amounts for display.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxFractionDigits upper bound on fraction digits in locale-aware output
const MaxFractionDigits = 6

// Formatter formats numbers using a locale's grouping and decimal separators.
// A Formatter without a locale prints a fixed four decimals.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for locale, a BCP 47 tag such as "en" or "de-CH".
// An empty locale means English; an unparsable one yields the fixed format.
func New(locale string) Formatter {
	tag := language.English
	if locale != "" {
		var err error
		tag, err = language.Parse(locale)
		if err != nil {
			return Formatter{}
		}
	}
	return Formatter{printer: message.NewPrinter(tag)}
}

// Fixed returns a Formatter that always uses four decimals
func Fixed() Formatter {
	return Formatter{}
}

// Number formats n with at most MaxFractionDigits fraction digits
func (f Formatter) Number(n float64) string {
	if f.printer == nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', 4, 64)
	}
	return f.printer.Sprint(number.Decimal(n, number.MaxFractionDigits(MaxFractionDigits)))
}
