package jpholiday

import (
	"testing"
	"time"
)

func TestDateBefore_EqualDates(t *testing.T) {
	t.Parallel()

	d1 := Date{Year: 2026, Month: time.January, Day: 1}
	if d1.Before(d1) {
		t.Error("equal dates: d.Before(d) should be false")
	}
	if d1.After(d1) {
		t.Error("equal dates: d.After(d) should be false")
	}
}

func TestDateBefore_SameYearSameMonth(t *testing.T) {
	t.Parallel()

	d1 := Date{Year: 2026, Month: time.January, Day: 1}
	d2 := Date{Year: 2026, Month: time.January, Day: 15}
	if !d1.Before(d2) {
		t.Error("Jan 1 should be before Jan 15")
	}
	if d2.Before(d1) {
		t.Error("Jan 15 should not be before Jan 1")
	}
}

func TestDateBefore_SameYearDifferentMonth(t *testing.T) {
	t.Parallel()

	d1 := Date{Year: 2026, Month: time.January, Day: 31}
	d2 := Date{Year: 2026, Month: time.February, Day: 1}
	if !d1.Before(d2) {
		t.Error("Jan 31 should be before Feb 1")
	}
}

func TestDateBefore_DifferentYear(t *testing.T) {
	t.Parallel()

	d1 := Date{Year: 2025, Month: time.December, Day: 31}
	d2 := Date{Year: 2026, Month: time.January, Day: 1}
	if !d1.Before(d2) {
		t.Error("2025-12-31 should be before 2026-01-01")
	}
}

func TestDateInRange_Boundaries(t *testing.T) {
	t.Parallel()

	from := Date{Year: 2026, Month: time.January, Day: 1}
	to := Date{Year: 2026, Month: time.January, Day: 31}

	if !from.InRange(from, to) {
		t.Error("from date should be in range (inclusive)")
	}
	if !to.InRange(from, to) {
		t.Error("to date should be in range (inclusive)")
	}

	beforeFrom := Date{Year: 2025, Month: time.December, Day: 31}
	afterTo := Date{Year: 2026, Month: time.February, Day: 1}
	if beforeFrom.InRange(from, to) {
		t.Error("day before from should not be in range")
	}
	if afterTo.InRange(from, to) {
		t.Error("day after to should not be in range")
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  Date
		want Date
	}{
		{NewDate(2024, time.January, 32), Date{2024, time.February, 1}},
		{NewDate(2024, time.March, 0), Date{2024, time.February, 29}},
		{NewDate(2023, time.March, 0), Date{2023, time.February, 28}},
		{NewDate(2024, time.December, 32), Date{2025, time.January, 1}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %s, want %s", tt.got, tt.want)
		}
	}
}

func TestDateAddDays(t *testing.T) {
	t.Parallel()

	d1 := Date{Year: 2024, Month: time.February, Day: 28}
	if got := d1.AddDays(1); got != (Date{2024, time.February, 29}) {
		t.Errorf("AddDays(1) = %s", got)
	}
	if got := d1.AddDays(2); got != (Date{2024, time.March, 1}) {
		t.Errorf("AddDays(2) = %s", got)
	}
	if got := (Date{2024, time.January, 1}).AddDays(-1); got != (Date{2023, time.December, 31}) {
		t.Errorf("AddDays(-1) = %s", got)
	}
}

func TestDateOf_TimeOfDayIgnored(t *testing.T) {
	t.Parallel()

	jst := time.FixedZone("JST", 9*60*60)
	early := time.Date(2024, time.May, 6, 0, 0, 0, 0, jst)
	late := time.Date(2024, time.May, 6, 23, 59, 59, 999, jst)
	if DateOf(early) != DateOf(late) {
		t.Errorf("DateOf(%v) != DateOf(%v)", early, late)
	}
	if Lookup(early) != Lookup(late) {
		t.Error("two timestamps on the same day should evaluate identically")
	}
}

func TestDateIn(t *testing.T) {
	t.Parallel()

	// 2025-12-31 20:00 UTC is already 2026-01-01 in JST.
	at := time.Date(2025, time.December, 31, 20, 0, 0, 0, time.UTC)
	if got := DateIn(at, time.UTC); got != (Date{2025, time.December, 31}) {
		t.Errorf("DateIn(UTC) = %s", got)
	}
	if got := DateOf(at); got != (Date{2026, time.January, 1}) {
		t.Errorf("DateOf = %s", got)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2024-05-06")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got != (Date{2024, time.May, 6}) {
		t.Errorf("ParseDate = %s", got)
	}
	if got.String() != "2024-05-06" {
		t.Errorf("String() = %q", got.String())
	}

	for _, bad := range []string{"", "2024/05/06", "2024-13-01", "2024-02-30"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestWeekdayOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		day  int
		want int
	}{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {21, 3}, {22, 4}, {28, 4}, {29, 5}, {31, 5},
	}
	for _, tt := range tests {
		if got := (Date{2024, time.January, tt.day}).WeekdayOrdinal(); got != tt.want {
			t.Errorf("WeekdayOrdinal(day %d) = %d, want %d", tt.day, got, tt.want)
		}
	}
}
