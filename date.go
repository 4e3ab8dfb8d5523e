package jpholiday

import (
	"fmt"
	"time"
)

// jstZone is the Asia/Tokyo timezone (UTC+9) used to normalize input times to
// the Japanese calendar date when no other location is configured.
var jstZone = time.FixedZone("Asia/Tokyo", 9*60*60)

// Date is a calendar day with no time-of-day component. Two Dates are equal
// iff their year, month and day match, so Date is usable as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for year, month and day. Out-of-range values are
// normalized the way time.Date normalizes them (e.g. January 32 is February 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateIn(time.Date(year, month, day, 0, 0, 0, 0, time.UTC), time.UTC)
}

// DateIn converts t to the calendar day it falls on in loc.
func DateIn(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateOf converts t to the calendar day it falls on in JST. A moment in time
// always maps to the same Japanese calendar date regardless of t's location.
func DateOf(t time.Time) Date {
	return DateIn(t, jstZone)
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateIn(t, time.UTC), nil
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days after d (before d when n is negative).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// WeekdayOrdinal reports which occurrence of its weekday d is within its
// month: 1 for the first Monday, 2 for the second Monday, and so on.
func (d Date) WeekdayOrdinal() int {
	return (d.Day-1)/7 + 1
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// InRange reports whether d lies in [from, to] inclusive.
func (d Date) InRange(from, to Date) bool {
	return !d.Before(from) && !to.Before(d)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
