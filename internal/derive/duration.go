package derive

import (
	"fmt"
	"strings"
)

// Approximate calendar lengths used for display.
const (
	daysPerYear  = 365
	daysPerMonth = 30
)

// Duration is a usage period split into display units. It is an
// approximation: years are 365 days and months are 30 days.
type Duration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// Decompose splits days into years, months and remaining days. Periods
// shorter than a month are kept as plain days.
func Decompose(days int) Duration {
	if days < daysPerMonth {
		return Duration{Days: days}
	}
	rest := days % daysPerYear
	return Duration{
		Years:  days / daysPerYear,
		Months: rest / daysPerMonth,
		Days:   rest % daysPerMonth,
	}
}

// Units names the duration components in some language.
type Units struct {
	Year, Years   string
	Month, Months string
	Day, Days     string
}

// Format renders d with the given unit names, omitting zero components.
// A duration of only days, including zero, is always rendered.
func (d Duration) Format(u Units) string {
	if d.Years == 0 && d.Months == 0 {
		return part(d.Days, u.Day, u.Days)
	}

	var parts []string
	if d.Years > 0 {
		parts = append(parts, part(d.Years, u.Year, u.Years))
	}
	if d.Months > 0 {
		parts = append(parts, part(d.Months, u.Month, u.Months))
	}
	if d.Days > 0 {
		parts = append(parts, part(d.Days, u.Day, u.Days))
	}
	return strings.Join(parts, " ")
}

// FormatUsageDuration decomposes days and renders the result.
func FormatUsageDuration(days int, u Units) string {
	return Decompose(days).Format(u)
}

func part(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
