// Package format renders amounts and dates the way the Peruvian locale does.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is the Peruvian sol symbol
const CurrencySymbol = "S/"

var (
	locale  = language.MustParse("es-PE")
	printer = message.NewPrinter(locale)
)

var shortMonths = []string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Currency formats v in soles with exactly two decimals, e.g. "S/ 12,500.00".
func Currency(v float64) string {
	return CurrencySymbol + " " + printer.Sprint(number.Decimal(v, number.Scale(2)))
}

// Number formats v with locale grouping and no fixed decimals.
func Number(v float64) string {
	return printer.Sprint(number.Decimal(v))
}

// ShortDate renders a date as "02 jun". Unparseable input is returned unchanged.
func ShortDate(s string) string {
	value := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return t.Format("02") + " " + shortMonths[t.Month()-1]
	}
	return s
}
