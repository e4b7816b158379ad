// Package date provides a calendar date with day granularity.
package date

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Format is the ISO 8601 layout dates are written in.
const Format = "2006-01-02"

// readFormats are tried in order by Parse. Both accept single-digit months
// and days; the slash form is what spreadsheet tools write back.
var readFormats = []string{"2006-1-2", "2006/1/2"}

// Date is a calendar day. The zero value means "no date".
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{t.Year(), t.Month(), t.Day()}
}

// Of returns the calendar day of t in t's location.
func Of(t time.Time) Date { return New(t.Date()) }

// Today returns the current local date.
func Today() Date { return Of(time.Now()) }

// Parse parses an ISO 8601 date. It is lenient about zero padding, accepts
// slashes as separators ("2024/1/5") and ignores a trailing time component
// ("2024-01-05T10:00:00Z").
func Parse(s string) (Date, error) {
	if len(s) > 10 && s[10] == 'T' {
		s = s[:10]
	}
	for _, layout := range readFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return Of(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q, want format %q", s, Format)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int          { return d.y }
func (d Date) Month() time.Month  { return d.m }
func (d Date) Day() int           { return d.d }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }
func (d Date) After(x Date) bool  { return d.Time().After(x.Time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.Time().Compare(x.Time()) }

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date { return New(d.y, d.m, d.d+n) }

const secondsPerDay = 24 * 60 * 60

// DaysSince returns the absolute number of whole days between d and x.
// Both are midnight UTC, so the difference is a whole number of days.
func (d Date) DaysSince(x Date) int {
	n := (d.Time().Unix() - x.Time().Unix()) / secondsPerDay
	if n < 0 {
		n = -n
	}
	return int(n)
}

// String formats the date as YYYY-MM-DD, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(Format)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so dates are stored as ISO text.
func (d Date) Value() (driver.Value, error) { return d.String(), nil }

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case time.Time:
		*d = Of(v.UTC())
		return nil
	default:
		return fmt.Errorf("cannot scan %T into date", src)
	}
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var (
	_ json.Marshaler   = Date{}
	_ json.Unmarshaler = (*Date)(nil)
	_ driver.Valuer    = Date{}
)
