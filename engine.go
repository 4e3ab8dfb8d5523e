package jpholiday

import "time"

// Result is the outcome of evaluating a single date. Key is empty when
// IsHoliday is false.
type Result struct {
	IsHoliday bool
	Key       Key
}

func holiday(k Key) Result {
	return Result{IsHoliday: true, Key: k}
}

// maxSubstituteScan bounds the backward scan for a Sunday holiday. The longest
// real run (Golden Week) needs three steps.
const maxSubstituteScan = 10

// Evaluate classifies d. Statutory holidays win over the substitute-holiday
// rule, which wins over the citizens'-holiday rule. Evaluate has no side
// effects and is safe for concurrent use; dates outside the covered years
// are simply not holidays.
func Evaluate(d Date) Result {
	if k := statutory(d); k != "" {
		return holiday(k)
	}
	if isSubstituteHoliday(d) {
		return holiday(SubstituteHoliday)
	}
	if isCitizensHoliday(d) {
		return holiday(CitizensHoliday)
	}
	return Result{}
}

// Lookup evaluates the JST calendar day t falls on.
func Lookup(t time.Time) Result {
	return Evaluate(DateOf(t))
}

// IsStatutory reports whether d is a statutory holiday, ignoring the derived
// substitute and citizens' holiday rules.
func IsStatutory(d Date) bool {
	return statutory(d) != ""
}

// isSubstituteHoliday walks back from d over consecutive statutory holidays
// and reports whether the run contains a Sunday.
func isSubstituteHoliday(d Date) bool {
	prev := d
	for range maxSubstituteScan {
		prev = prev.AddDays(-1)
		if statutory(prev) == "" {
			return false
		}
		if prev.Weekday() == time.Sunday {
			return true
		}
	}
	return false
}

// isCitizensHoliday reports whether d is sandwiched between two statutory
// holidays.
func isCitizensHoliday(d Date) bool {
	return statutory(d.AddDays(-1)) != "" && statutory(d.AddDays(1)) != ""
}
