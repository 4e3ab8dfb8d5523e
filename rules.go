package jpholiday

import "time"

// FirstYear is the first year the statutory rules cover. Earlier dates are
// never holidays.
const FirstYear = 2014

// A rule decides whether d is one particular statutory holiday and returns
// its key, or "" when it is not.
type rule func(d Date) Key

// statutoryRules are mutually exclusive by month and day; the order only
// fixes the dispatch sequence.
var statutoryRules = []rule{
	newYearsDay,
	comingOfAgeDay,
	nationalFoundationDay,
	emperorsBirthday,
	vernalEquinoxDay,
	showaDay,
	accessionDay,
	constitutionDay,
	greeneryDay,
	childrensDay,
	marineDay,
	mountainDay,
	respectForTheAgedDay,
	autumnalEquinoxDay,
	sportsDay,
	enthronementCeremony,
	cultureDay,
	laborThanksgivingDay,
}

// statutory returns the key of the statutory holiday on d, or "".
func statutory(d Date) Key {
	for _, r := range statutoryRules {
		if k := r(d); k != "" {
			return k
		}
	}
	return ""
}

// fixed builds a rule for a holiday on the same month and day every year
// from FirstYear on.
func fixed(key Key, month time.Month, day int) rule {
	return func(d Date) Key {
		if d.Year >= FirstYear && d.Month == month && d.Day == day {
			return key
		}
		return ""
	}
}

// once builds a rule for a one-off holiday.
func once(key Key, year int, month time.Month, day int) rule {
	return func(d Date) Key {
		if d == (Date{Year: year, Month: month, Day: day}) {
			return key
		}
		return ""
	}
}

// isNthWeekday reports whether d is the nth weekday wd of month.
func isNthWeekday(d Date, month time.Month, n int, wd time.Weekday) bool {
	return d.Month == month && d.WeekdayOrdinal() == n && d.Weekday() == wd
}

var (
	newYearsDay           = fixed(NewYearsDay, time.January, 1)
	nationalFoundationDay = fixed(NationalFoundationDay, time.February, 11)
	showaDay              = fixed(ShowaDay, time.April, 29)
	accessionDay          = once(AccessionDay, 2019, time.May, 1)
	constitutionDay       = fixed(ConstitutionDay, time.May, 3)
	greeneryDay           = fixed(GreeneryDay, time.May, 4)
	childrensDay          = fixed(ChildrensDay, time.May, 5)
	enthronementCeremony  = once(EnthronementCeremony, 2019, time.October, 22)
	cultureDay            = fixed(CultureDay, time.November, 3)
	laborThanksgivingDay  = fixed(LaborThanksgivingDay, time.November, 23)
)

func comingOfAgeDay(d Date) Key {
	if d.Year >= FirstYear && isNthWeekday(d, time.January, 2, time.Monday) {
		return ComingOfAgeDay
	}
	return ""
}

// reiwaStart is the first day of the current era; the Emperor's Birthday
// moved from December 23 to February 23 with it.
var reiwaStart = Date{Year: 2019, Month: time.May, Day: 1}

func emperorsBirthday(d Date) Key {
	if !d.Before(reiwaStart) {
		if d.Month == time.February && d.Day == 23 {
			return EmperorsBirthday
		}
		return ""
	}
	if d.Year >= FirstYear && d.Month == time.December && d.Day == 23 {
		return EmperorsBirthday
	}
	return ""
}

func vernalEquinoxDay(d Date) Key {
	if d.Year < FirstYear || d.Month != time.March {
		return ""
	}
	if day, ok := VernalEquinox(d.Year); ok && d.Day == day {
		return VernalEquinoxDay
	}
	return ""
}

func autumnalEquinoxDay(d Date) Key {
	if d.Year < FirstYear || d.Month != time.September {
		return ""
	}
	if day, ok := AutumnalEquinox(d.Year); ok && d.Day == day {
		return AutumnalEquinoxDay
	}
	return ""
}

// olympicYear reports whether year had the Tokyo Olympics reschedule of
// Marine Day, Mountain Day and Sports Day.
func olympicYear(year int) bool {
	return year == 2020 || year == 2021
}

func marineDay(d Date) Key {
	switch d {
	case Date{Year: 2020, Month: time.July, Day: 23}, Date{Year: 2021, Month: time.July, Day: 22}:
		return MarineDay
	}
	if d.Year >= FirstYear && !olympicYear(d.Year) && isNthWeekday(d, time.July, 3, time.Monday) {
		return MarineDay
	}
	return ""
}

// mountainDayFirstYear is the year Mountain Day was first observed.
const mountainDayFirstYear = 2016

func mountainDay(d Date) Key {
	switch d {
	case Date{Year: 2020, Month: time.August, Day: 10}, Date{Year: 2021, Month: time.August, Day: 8}:
		return MountainDay
	}
	if d.Year >= mountainDayFirstYear && !olympicYear(d.Year) && d.Month == time.August && d.Day == 11 {
		return MountainDay
	}
	return ""
}

func respectForTheAgedDay(d Date) Key {
	if d.Year >= FirstYear && isNthWeekday(d, time.September, 3, time.Monday) {
		return RespectForTheAgedDay
	}
	return ""
}

// Health and Sports Day was renamed Sports Day in 2020.
func sportsDay(d Date) Key {
	switch d {
	case Date{Year: 2020, Month: time.July, Day: 24}, Date{Year: 2021, Month: time.July, Day: 23}:
		return SportsDay
	}
	if !isNthWeekday(d, time.October, 2, time.Monday) {
		return ""
	}
	switch {
	case d.Year >= 2022:
		return SportsDay
	case d.Year >= FirstYear && d.Year <= 2019:
		return HealthAndSportsDay
	}
	return ""
}
