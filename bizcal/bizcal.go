// Package bizcal exposes Japanese holidays as a rickar/cal business
// calendar, for code that already schedules work with that library.
package bizcal

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/rabitt1ove/jpholiday"
)

// Holidays converts every holiday of c between the years from and to
// (inclusive) into a cal.Holiday pinned to its single year. Custom holidays
// are included; their Description is "custom".
func Holidays(c *jpholiday.Calendar, from, to int) []*cal.Holiday {
	var out []*cal.Holiday
	for year := from; year <= to; year++ {
		for _, h := range c.HolidaysInYear(year) {
			desc := string(h.Key)
			if h.Key == "" {
				desc = "custom"
			}
			out = append(out, &cal.Holiday{
				Name:        h.Name,
				Description: desc,
				Type:        cal.ObservancePublic,
				Month:       h.Date.Month(),
				Day:         h.Date.Day(),
				StartYear:   year,
				EndYear:     year,
				Func:        cal.CalcDayOfMonth,
			})
		}
	}
	return out
}

// NewBusinessCalendar returns a Monday to Friday business calendar observing
// the holidays of c in the years from to to. The returned calendar is a
// snapshot: later changes to c are not reflected.
func NewBusinessCalendar(c *jpholiday.Calendar, from, to int) (*cal.BusinessCalendar, error) {
	if to < from {
		return nil, fmt.Errorf("bizcal: invalid year range %d-%d", from, to)
	}
	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(Holidays(c, from, to)...)
	return bc, nil
}

// IsWorkday reports whether t is a workday in bc. It is a convenience for
// callers holding a JST timestamp: the day is taken in loc before asking bc.
func IsWorkday(bc *cal.BusinessCalendar, t time.Time, loc *time.Location) bool {
	d := jpholiday.DateIn(t, loc)
	return bc.IsWorkday(time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC))
}
