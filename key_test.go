package jpholiday

import (
	"testing"

	"golang.org/x/text/language"
)

func TestKeyNames(t *testing.T) {
	t.Parallel()

	for _, k := range Keys() {
		if k.Japanese() == "" {
			t.Errorf("%q has no Japanese name", k)
		}
		if k.Name(language.English) == "" {
			t.Errorf("%q has no English name", k)
		}
	}
}

func TestKeyName_Matching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		want string
	}{
		{"ja", "振替休日"},
		{"ja-JP", "振替休日"},
		{"en", "Substitute Holiday"},
		{"en-US,en;q=0.9", "Substitute Holiday"},
		{"fr", "振替休日"},
		{"", "振替休日"},
	}
	for _, tt := range tests {
		if got := SubstituteHoliday.NameFor(tt.lang); got != tt.want {
			t.Errorf("NameFor(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
	if got := NewYearsDay.Name(language.BritishEnglish); got != "New Year's Day" {
		t.Errorf("Name(en-GB) = %q", got)
	}
	if got := Key("nope").Japanese(); got != "" {
		t.Errorf("unknown key Japanese() = %q", got)
	}
}

func TestKeyKinds(t *testing.T) {
	t.Parallel()

	var derived, statutory int
	for _, k := range Keys() {
		if k.Derived() {
			derived++
		}
		if k.Statutory() {
			statutory++
		}
		if k.Derived() == k.Statutory() {
			t.Errorf("%q: Derived and Statutory agree", k)
		}
	}
	if derived != 2 {
		t.Errorf("derived keys = %d, want 2", derived)
	}
	if statutory != len(statutoryRules)+1 {
		// HealthAndSportsDay and SportsDay share one rule.
		t.Errorf("statutory keys = %d, want %d", statutory, len(statutoryRules)+1)
	}
	if Key("").Statutory() || Key("unknown").Statutory() {
		t.Error("empty or unknown key reported as statutory")
	}
}

func TestKeys_ReturnsCopy(t *testing.T) {
	t.Parallel()

	keys := Keys()
	keys[0] = "mutated"
	if Keys()[0] != NewYearsDay {
		t.Error("Keys() exposes internal slice")
	}
}
