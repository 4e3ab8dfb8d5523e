package jpholiday

import (
	"testing"
	"time"
)

func TestEquinoxDays(t *testing.T) {
	t.Parallel()

	// Days published by the National Astronomical Observatory of Japan.
	tests := []struct {
		year     int
		vernal   int
		autumnal int
	}{
		{2014, 21, 23},
		{2015, 21, 23},
		{2016, 20, 22},
		{2017, 20, 23},
		{2018, 21, 23},
		{2019, 21, 23},
		{2020, 20, 22},
		{2021, 20, 23},
		{2022, 21, 23},
		{2023, 21, 23},
		{2024, 20, 22},
		{2025, 20, 23},
		{2026, 20, 23},
		{2027, 21, 23},
		{2028, 20, 22},
		{2029, 20, 23},
		{2030, 20, 23},
	}
	for _, tt := range tests {
		v, ok := VernalEquinox(tt.year)
		if !ok || v != tt.vernal {
			t.Errorf("VernalEquinox(%d) = %d, %v; want %d", tt.year, v, ok, tt.vernal)
		}
		a, ok := AutumnalEquinox(tt.year)
		if !ok || a != tt.autumnal {
			t.Errorf("AutumnalEquinox(%d) = %d, %v; want %d", tt.year, a, ok, tt.autumnal)
		}

		if got := Evaluate(date(tt.year, time.March, tt.vernal)).Key; got != VernalEquinoxDay {
			t.Errorf("%d-03-%02d = %q, want %q", tt.year, tt.vernal, got, VernalEquinoxDay)
		}
		if got := Evaluate(date(tt.year, time.September, tt.autumnal)).Key; got != AutumnalEquinoxDay {
			t.Errorf("%d-09-%02d = %q, want %q", tt.year, tt.autumnal, got, AutumnalEquinoxDay)
		}
	}
}

func TestEquinox_OutsideWindow(t *testing.T) {
	t.Parallel()

	for _, year := range []int{1999, 2100, 1, 3000} {
		if _, ok := VernalEquinox(year); ok {
			t.Errorf("VernalEquinox(%d): expected ok=false", year)
		}
		if _, ok := AutumnalEquinox(year); ok {
			t.Errorf("AutumnalEquinox(%d): expected ok=false", year)
		}
	}
	for day := 1; day <= 31; day++ {
		if Evaluate(date(2100, time.March, day)).Key == VernalEquinoxDay {
			t.Errorf("2100-03-%02d evaluated as vernal equinox", day)
		}
	}
}

func TestEquinox_WindowEdges(t *testing.T) {
	t.Parallel()

	if d, ok := VernalEquinox(2000); !ok || d != 20 {
		t.Errorf("VernalEquinox(2000) = %d, %v", d, ok)
	}
	if d, ok := AutumnalEquinox(2099); !ok || d < 21 || d > 24 {
		t.Errorf("AutumnalEquinox(2099) = %d, %v", d, ok)
	}
}
