package scoring

import (
	"time"

	"github.com/shopspring/decimal"
)

// Date parsing and duration math. Malformed or inverted ranges degrade to
// zero duration instead of failing: the engine must never block a save over
// a data-quality issue, it just scores conservatively.

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02-01-2006",
	"2006/01/02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// durationDays returns the span between two date strings in days, or zero
// when either date is unparseable or the range is inverted.
func durationDays(start, end string) decimal.Decimal {
	s, ok := parseDate(start)
	if !ok {
		return decimal.Zero
	}
	e, ok := parseDate(end)
	if !ok {
		return decimal.Zero
	}
	if !e.After(s) {
		return decimal.Zero
	}
	hours := decimal.NewFromFloat(e.Sub(s).Hours())
	return hours.Div(decimal.NewFromInt(24))
}

// The original rules reckon a year as 365 days and a month as 30 days.

func durationYears(start, end string) decimal.Decimal {
	return durationDays(start, end).Div(decimal.NewFromInt(365))
}

func durationMonths(start, end string) decimal.Decimal {
	return durationDays(start, end).Div(decimal.NewFromInt(30))
}
