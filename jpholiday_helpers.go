package jpholiday

import "time"

// maxScanDays bounds the day-by-day searches below.
const maxScanDays = 366

// IsBusinessDay reports whether the given date is a business day
// (neither a weekend nor a holiday). The date is interpreted in the
// calendar's location.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	return c.isBusinessDate(c.DateOf(t))
}

func (c *Calendar) isBusinessDate(d Date) bool {
	wd := d.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, ok := c.lookup(d)
	return !ok
}

// NextHoliday returns the next holiday strictly after the given date.
// Returns false if no holiday exists within the following year.
func (c *Calendar) NextHoliday(t time.Time) (Holiday, bool) {
	d := c.DateOf(t)
	for range maxScanDays {
		d = d.AddDays(1)
		if h, ok := c.lookup(d); ok {
			return h, true
		}
	}
	return Holiday{}, false
}

// PreviousHoliday returns the most recent holiday strictly before the given date.
// Returns false if no holiday exists within the preceding year.
func (c *Calendar) PreviousHoliday(t time.Time) (Holiday, bool) {
	d := c.DateOf(t)
	for range maxScanDays {
		d = d.AddDays(-1)
		if h, ok := c.lookup(d); ok {
			return h, true
		}
	}
	return Holiday{}, false
}

// NextBusinessDay returns the next business day on or after the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	d := c.DateOf(t)
	for range maxScanDays {
		if c.isBusinessDate(d) {
			return d.Time()
		}
		d = d.AddDays(1)
	}
	return time.Time{}
}

// PreviousBusinessDay returns the most recent business day on or before the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) PreviousBusinessDay(t time.Time) time.Time {
	d := c.DateOf(t)
	for range maxScanDays {
		if c.isBusinessDate(d) {
			return d.Time()
		}
		d = d.AddDays(-1)
	}
	return time.Time{}
}

// BusinessDaysBetween returns the count of business days in the range [from, to] inclusive.
// If from is after to, returns 0.
func (c *Calendar) BusinessDaysBetween(from, to time.Time) int {
	fromD := c.DateOf(from)
	toD := c.DateOf(to)
	if toD.Before(fromD) {
		return 0
	}

	count := 0
	for d := fromD; !d.After(toD); d = d.AddDays(1) {
		if c.isBusinessDate(d) {
			count++
		}
	}
	return count
}

// --- Package-level convenience functions ---

// IsBusinessDay reports whether the given date is a business day.
func IsBusinessDay(t time.Time) bool { return defaultCal.IsBusinessDay(t) }

// NextHoliday returns the next holiday strictly after the given date.
func NextHoliday(t time.Time) (Holiday, bool) { return defaultCal.NextHoliday(t) }

// PreviousHoliday returns the most recent holiday strictly before the given date.
func PreviousHoliday(t time.Time) (Holiday, bool) { return defaultCal.PreviousHoliday(t) }

// NextBusinessDay returns the next business day on or after the given date.
func NextBusinessDay(t time.Time) time.Time { return defaultCal.NextBusinessDay(t) }

// PreviousBusinessDay returns the most recent business day on or before the given date.
func PreviousBusinessDay(t time.Time) time.Time { return defaultCal.PreviousBusinessDay(t) }

// BusinessDaysBetween returns the count of business days in the range [from, to].
func BusinessDaysBetween(from, to time.Time) int { return defaultCal.BusinessDaysBetween(from, to) }
