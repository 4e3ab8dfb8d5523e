// Package grid lays out a month as the six-week, Sunday-first grid of a wall
// calendar and attaches holidays and user entries to each day.
package grid

import (
	"time"

	"github.com/google/uuid"

	"github.com/rabitt1ove/jpholiday"
)

const (
	// WeeksPerMonth is the number of rows in a month grid.
	WeeksPerMonth = 6
	// DaysPerMonth is the number of days a month grid displays.
	DaysPerMonth = WeeksPerMonth * 7
)

// Alignment is the horizontal alignment of an entry in the day table.
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignCenter
	AlignTrailing
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignTrailing:
		return "trailing"
	}
	return "leading"
}

// Style is how an entry should be drawn. It is plain data; nothing in this
// package renders it.
type Style struct {
	LeftLabelColor   string    `json:"left_label_color"`
	MiddleLabelColor string    `json:"middle_label_color"`
	ValueColor       string    `json:"value_color"`
	UnitColor        string    `json:"unit_color"`
	RightLabelColor  string    `json:"right_label_color"`
	TableFontSize    float64   `json:"table_font_size"`
	ListFontSize     float64   `json:"list_font_size"`
	TableAlignment   Alignment `json:"table_alignment"`
}

// DefaultStyle is black text, 10pt in the day table and 12pt in lists.
func DefaultStyle() Style {
	return Style{
		LeftLabelColor:   "black",
		MiddleLabelColor: "black",
		ValueColor:       "black",
		UnitColor:        "black",
		RightLabelColor:  "black",
		TableFontSize:    10,
		ListFontSize:     12,
		TableAlignment:   AlignLeading,
	}
}

// Entry is a user record shown on a calendar day, e.g. a body weight
// ("体重", "65.2", "kg"). Tag is an application-defined key used to edit or
// delete the entry; ID is assigned by [Book.Add].
type Entry struct {
	ID          uuid.UUID
	Tag         string
	Date        jpholiday.Date
	LeftLabel   string
	MiddleLabel string
	Value       string
	Unit        string
	RightLabel  string
	Style       Style
}

// NewEntry returns an entry on d with the default style.
func NewEntry(tag string, d jpholiday.Date) Entry {
	return Entry{Tag: tag, Date: d, Style: DefaultStyle()}
}

// HolidayFunc classifies a day. [jpholiday.Evaluate] is one.
type HolidayFunc func(d jpholiday.Date) jpholiday.Result

// Day is one cell of the grid.
type Day struct {
	Date    jpholiday.Date
	InMonth bool // false for the leading and trailing days of adjacent months
	Holiday jpholiday.Result
	Entries []Entry
}

// Week is one row of the grid, Sunday first.
type Week struct {
	Number int // 1 to WeeksPerMonth
	Days   [7]Day
}

// Month is the grid for one month.
type Month struct {
	Year  int
	Month time.Month
	Weeks [WeeksPerMonth]Week
}

// StartDate returns the Sunday on or before the first of the month, the top
// left cell of the grid.
func StartDate(year int, month time.Month) jpholiday.Date {
	first := jpholiday.NewDate(year, month, 1)
	return first.AddDays(-int(first.Weekday()))
}

// EndDate returns the bottom right cell of the grid.
func EndDate(year int, month time.Month) jpholiday.Date {
	return StartDate(year, month).AddDays(DaysPerMonth - 1)
}

// WeekOfMonth returns the grid row (1 to 6) d is displayed in, or 0 when d
// falls outside the grid. Days of the previous month sit in the first row and
// days of the next month continue the rows after the last day.
func WeekOfMonth(year int, month time.Month, d jpholiday.Date) int {
	start := StartDate(year, month)
	if d.Before(start) || d.After(EndDate(year, month)) {
		return 0
	}
	days := int(d.Time().Sub(start.Time()).Hours() / 24)
	return days/7 + 1
}

// Build lays out year/month. holiday is called once per displayed day; a nil
// holiday leaves every Day.Holiday zero. Entries are attached to the day
// matching their Date in the order given; entries outside the grid are
// ignored.
func Build(year int, month time.Month, entries []Entry, holiday HolidayFunc) Month {
	start := StartDate(year, month)
	// NewDate normalizes, so month 13 and the like resolve here.
	norm := jpholiday.NewDate(year, month, 1)
	m := Month{Year: norm.Year, Month: norm.Month}

	byDate := make(map[jpholiday.Date][]Entry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	for i := range DaysPerMonth {
		d := start.AddDays(i)
		day := Day{
			Date:    d,
			InMonth: d.Year == norm.Year && d.Month == norm.Month,
			Entries: byDate[d],
		}
		if holiday != nil {
			day.Holiday = holiday(d)
		}
		w := i / 7
		m.Weeks[w].Number = w + 1
		m.Weeks[w].Days[i%7] = day
	}
	return m
}

// Days returns the cells of m in display order.
func (m Month) Days() []Day {
	out := make([]Day, 0, DaysPerMonth)
	for _, w := range m.Weeks {
		out = append(out, w.Days[:]...)
	}
	return out
}

// Day returns the cell for d.
func (m Month) Day(d jpholiday.Date) (Day, bool) {
	for _, w := range m.Weeks {
		for _, day := range w.Days {
			if day.Date == d {
				return day, true
			}
		}
	}
	return Day{}, false
}

// Holidays returns the in-month days that are holidays.
func (m Month) Holidays() []Day {
	var out []Day
	for _, day := range m.Days() {
		if day.InMonth && day.Holiday.IsHoliday {
			out = append(out, day)
		}
	}
	return out
}
