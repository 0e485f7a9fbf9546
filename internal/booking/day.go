package booking

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar date without clock or zone. The zero value means "no date".
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the date portion of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses YYYY-MM-DD.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Day{}, fmt.Errorf("booking: empty date")
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("booking: parse date %q: %w", s, err)
	}
	return DayOf(t), nil
}

// IsZero reports whether d is unset.
func (d Day) IsZero() bool { return d.Year == 0 && d.Month == 0 && d.Day == 0 }

// Time returns midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d falls strictly before o.
func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Weekday returns the day of the week for d.
func (d Day) Weekday() time.Weekday { return d.Time(time.UTC).Weekday() }

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time(time.UTC).Format(dayLayout)
}

// MarshalText encodes d as YYYY-MM-DD; the zero day encodes as "".
func (d Day) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText accepts YYYY-MM-DD or "".
func (d *Day) UnmarshalText(b []byte) error {
	if len(strings.TrimSpace(string(b))) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Month is the displayed-month cursor of the calendar.
type Month struct {
	Year  int        `json:"y"`
	Month time.Month `json:"m"`
}

// MonthOf returns the month containing d.
func MonthOf(d Day) Month { return Month{Year: d.Year, Month: d.Month} }

// IsZero reports whether the cursor is unset.
func (m Month) IsZero() bool { return m.Year == 0 && m.Month == 0 }

// Add moves the cursor by n months, normalizing across year boundaries.
func (m Month) Add(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Prev is the month before m.
func (m Month) Prev() Month { return m.Add(-1) }

// Next is the month after m.
func (m Month) Next() Month { return m.Add(1) }

// First is day 1 of m.
func (m Month) First() Day { return Day{Year: m.Year, Month: m.Month, Day: 1} }

// Days returns the number of days in m.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Label renders "October 2026".
func (m Month) Label() string { return fmt.Sprintf("%s %d", m.Month, m.Year) }
