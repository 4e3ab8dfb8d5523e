// Package jpholiday computes Japanese national holidays from the rules of the
// Act on National Holidays instead of a fixed table, and layers business-day
// utilities and custom holidays on top.
//
// The engine covers 2014 onward. Each date is classified by the statutory
// rules (fixed dates, nth-Monday holidays, equinoxes and the one-off 2019
// and Olympic dates), then by the substitute-holiday rule and finally by the
// citizens'-holiday rule.
//
// All time.Time inputs are normalized to a calendar day before evaluation,
// in JST (Asia/Tokyo, UTC+9) unless the Calendar is configured otherwise.
//
// Basic usage with package-level functions:
//
//	jst := time.FixedZone("Asia/Tokyo", 9*60*60)
//	t := time.Date(2024, 1, 1, 0, 0, 0, 0, jst)
//	jpholiday.IsHoliday(t)    // true
//	jpholiday.HolidayName(t)  // "元日"
//
// The engine itself works on plain dates:
//
//	r := jpholiday.Evaluate(jpholiday.NewDate(2024, time.May, 6))
//	r.Key // jpholiday.SubstituteHoliday
//
// For isolated custom holiday management, create a Calendar instance:
//
//	cal := jpholiday.New()
//	cal.AddCustomHoliday(t, "会社記念日")
package jpholiday

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/teambition/rrule-go"
)

// Holiday represents a single holiday entry.
type Holiday struct {
	Date time.Time // The date of the holiday (midnight UTC).
	Key  Key       // The engine key; empty for custom holidays.
	Name string    // The Japanese name of the holiday (e.g., "元日") or the custom name.
}

// recurring is a custom holiday repeating by an RFC 5545 rule.
type recurring struct {
	name string
	rule *rrule.RRule
}

// Calendar evaluates holidays and supports custom holidays.
// Create one with [New]. All methods are safe for concurrent use.
type Calendar struct {
	loc *time.Location

	mu        sync.RWMutex
	custom    map[Date]string
	removed   map[Date]bool
	recurring []recurring
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithLocation sets the location used to turn a time.Time into a calendar day.
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// New creates a new Calendar backed by the holiday rule engine.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		loc:     jstZone,
		custom:  make(map[Date]string),
		removed: make(map[Date]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// Location returns the location the calendar normalizes times in.
func (c *Calendar) Location() *time.Location { return c.loc }

// DateOf converts t to the calendar day it falls on in the calendar's location.
func (c *Calendar) DateOf(t time.Time) Date { return DateIn(t, c.loc) }

// lookup returns the holiday on d, checking custom holidays first, then
// recurring custom holidays, then the rule engine (unless removed).
func (c *Calendar) lookup(d Date) (Holiday, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.custom[d]; ok {
		return Holiday{Date: d.Time(), Name: name}, true
	}
	if name, ok := c.recurringOn(d); ok {
		return Holiday{Date: d.Time(), Name: name}, true
	}
	if c.removed[d] {
		return Holiday{}, false
	}
	if r := Evaluate(d); r.IsHoliday {
		return Holiday{Date: d.Time(), Key: r.Key, Name: r.Key.Japanese()}, true
	}
	return Holiday{}, false
}

// recurringOn must be called with c.mu held. Occurrences are dated in the
// zone of their DTSTART, so the search window is padded by a day each side.
func (c *Calendar) recurringOn(d Date) (string, bool) {
	if len(c.recurring) == 0 {
		return "", false
	}
	start := d.Time().Add(-24 * time.Hour)
	end := d.Time().Add(48*time.Hour - time.Nanosecond)
	for _, r := range c.recurring {
		for _, at := range r.rule.Between(start, end, true) {
			if DateIn(at, at.Location()) == d {
				return r.name, true
			}
		}
	}
	return "", false
}

// IsHoliday reports whether the given date is a holiday (engine or custom).
// The input time is converted to the calendar's location before extracting
// the calendar date.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.lookup(c.DateOf(t))
	return ok
}

// HolidayName returns the holiday name for the given date, or an empty string
// if it is not a holiday.
func (c *Calendar) HolidayName(t time.Time) string {
	h, _ := c.lookup(c.DateOf(t))
	return h.Name
}

// Holiday returns the holiday on the given date.
func (c *Calendar) Holiday(t time.Time) (Holiday, bool) {
	return c.lookup(c.DateOf(t))
}

// HolidayOn is like [Calendar.Holiday] for a calendar day.
func (c *Calendar) HolidayOn(d Date) (Holiday, bool) {
	return c.lookup(d)
}

// HolidaysInYear returns all holidays in the given year, sorted by date.
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	from := Date{Year: year, Month: time.January, Day: 1}
	to := Date{Year: year, Month: time.December, Day: 31}
	return c.holidaysInRange(from, to)
}

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func (c *Calendar) HolidaysInMonth(year int, month time.Month) []Holiday {
	from := Date{Year: year, Month: month, Day: 1}
	to := Date{Year: year, Month: month, Day: daysInMonth(year, month)}
	return c.holidaysInRange(from, to)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive,
// sorted by date. If from is after to, returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) []Holiday {
	fromD := c.DateOf(from)
	toD := c.DateOf(to)
	if toD.Before(fromD) {
		return nil
	}
	return c.holidaysInRange(fromD, toD)
}

// holidaysInRange evaluates every day within the given range (inclusive).
// Days are visited in order, so the result is already sorted.
func (c *Calendar) holidaysInRange(from, to Date) []Holiday {
	var result []Holiday
	for d := from; !d.After(to); d = d.AddDays(1) {
		if h, ok := c.lookup(d); ok {
			result = append(result, h)
		}
	}
	return result
}

// AddCustomHoliday registers a custom holiday on the given date.
// If a custom holiday already exists on that date, it is overwritten.
// If an engine holiday exists on the same date, this custom holiday takes
// precedence in lookups and list APIs. Custom holidays never create
// substitute or citizens' holidays.
func (c *Calendar) AddCustomHoliday(t time.Time, name string) {
	d := c.DateOf(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[d] = name
}

// RemoveCustomHoliday removes a previously added custom holiday.
// Has no effect if no custom holiday exists on that date.
func (c *Calendar) RemoveCustomHoliday(t time.Time) {
	d := c.DateOf(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.custom, d)
}

// AddRecurringHoliday registers a custom holiday repeating by an RFC 5545
// recurrence rule, e.g. "FREQ=YEARLY;BYMONTH=6;BYMONTHDAY=15". A leading
// "RRULE:" is accepted, as is a "DTSTART;TZID=Asia/Tokyo:20240614T000000"
// line before the rule. Rules without DTSTART start on January 1 of
// [FirstYear]. Registering a name again replaces its rule.
func (c *Calendar) AddRecurringHoliday(rule, name string) error {
	raw := normalizeRule(rule)
	r, err := rrule.StrToRRule(raw)
	if err != nil {
		return fmt.Errorf("invalid RRULE %q: %w", raw, err)
	}
	if !strings.Contains(strings.ToUpper(raw), "DTSTART") {
		opts := r.OrigOptions
		opts.Dtstart = time.Date(FirstYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		if r, err = rrule.NewRRule(opts); err != nil {
			return fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeRecurring(name)
	c.recurring = append(c.recurring, recurring{name: name, rule: r})
	return nil
}

// normalizeRule uppercases the rule lines. DTSTART lines keep their case
// because a TZID names a zone database entry.
func normalizeRule(rule string) string {
	lines := strings.Split(strings.TrimSpace(rule), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToUpper(line), "DTSTART") {
			line = strings.ToUpper(line)
		}
		lines[i] = line
	}
	return strings.TrimPrefix(strings.Join(lines, "\n"), "RRULE:")
}

// RemoveRecurringHoliday removes the recurring holiday registered under name.
func (c *Calendar) RemoveRecurringHoliday(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeRecurring(name)
}

// removeRecurring must be called with c.mu held for writing.
func (c *Calendar) removeRecurring(name string) {
	kept := c.recurring[:0]
	for _, r := range c.recurring {
		if r.name != name {
			kept = append(kept, r)
		}
	}
	c.recurring = kept
}

// RecurringHolidays returns the names of the registered recurring holidays, sorted.
func (c *Calendar) RecurringHolidays() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.recurring))
	for _, r := range c.recurring {
		names = append(names, r.name)
	}
	sort.Strings(names)
	return names
}

// RemoveHoliday suppresses an engine holiday so it no longer appears in queries.
// Has no effect on custom holidays. Use [Calendar.RestoreHoliday] to undo.
func (c *Calendar) RemoveHoliday(t time.Time) {
	d := c.DateOf(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed[d] = true
}

// RestoreHoliday restores a previously removed engine holiday.
func (c *Calendar) RestoreHoliday(t time.Time) {
	d := c.DateOf(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.removed, d)
}

// --- Package-level convenience functions ---

// IsHoliday reports whether the given date is a holiday.
func IsHoliday(t time.Time) bool { return defaultCal.IsHoliday(t) }

// HolidayName returns the holiday name for the given date, or "".
func HolidayName(t time.Time) string { return defaultCal.HolidayName(t) }

// HolidaysInYear returns all holidays in the given year, sorted by date.
func HolidaysInYear(year int) []Holiday { return defaultCal.HolidaysInYear(year) }

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func HolidaysInMonth(year int, month time.Month) []Holiday {
	return defaultCal.HolidaysInMonth(year, month)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive.
func HolidaysBetween(from, to time.Time) []Holiday {
	return defaultCal.HolidaysBetween(from, to)
}

// AddCustomHoliday registers a custom holiday on the default calendar.
func AddCustomHoliday(t time.Time, name string) { defaultCal.AddCustomHoliday(t, name) }

// RemoveCustomHoliday removes a custom holiday from the default calendar.
func RemoveCustomHoliday(t time.Time) { defaultCal.RemoveCustomHoliday(t) }

// RemoveHoliday suppresses an engine holiday on the default calendar.
func RemoveHoliday(t time.Time) { defaultCal.RemoveHoliday(t) }

// RestoreHoliday restores a suppressed engine holiday on the default calendar.
func RestoreHoliday(t time.Time) { defaultCal.RestoreHoliday(t) }
