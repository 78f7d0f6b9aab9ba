// Package format renders dashboard display strings (currency badges,
// chart labels) with locale-aware digit grouping.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var supported = []language.Tag{
	language.English, // default
	language.Spanish,
	language.French,
	language.German,
	language.Indonesian,
	language.Portuguese,
}

var matcher = language.NewMatcher(supported)

// Printer resolves a locale string (BCP 47, possibly from an HTTP header)
// to a message printer, falling back to English on anything unparseable.
func Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		return message.NewPrinter(language.English)
	}
	matched, _, _ := matcher.Match(tag)
	return message.NewPrinter(matched)
}

// Currency renders a whole-unit dollar amount with grouped digits, e.g.
// "$12,345". Fractions round to the nearest unit, matching the dashboard
// badges.
func Currency(p *message.Printer, amount float64) string {
	return p.Sprintf("$%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}
