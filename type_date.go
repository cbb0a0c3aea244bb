package logbook

import (
	"encoding/json"
	"fmt"
	"time"
)

// readDateFormat is permissive and accepts single-digit month/day.
const readDateFormat = "2006-1-2"

// DateFormat is the canonical ISO-8601 format used to write dates.
const DateFormat = "2006-01-02"

// Date represents a calendar date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// ParseDate parses a date string in ISO-8601 format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(readDateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// time returns the canonical representation of that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	day, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = day
	return nil
}
