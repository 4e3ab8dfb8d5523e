package official

import (
	"fmt"

	"github.com/rabitt1ove/jpholiday"
)

// Lookup resolves the holiday on a calendar day. *jpholiday.Calendar
// satisfies it.
type Lookup interface {
	HolidayOn(d jpholiday.Date) (jpholiday.Holiday, bool)
}

// Kind classifies a disagreement between the engine and the published list.
type Kind int

const (
	// Missing means the list has a holiday the engine does not.
	Missing Kind = iota + 1
	// Extra means the engine has a holiday the list does not.
	Extra
)

func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Extra:
		return "extra"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mismatch is a day on which the engine and the published list disagree.
type Mismatch struct {
	Date     jpholiday.Date
	Kind     Kind
	Official string        // name in the list, for Missing
	Engine   jpholiday.Key // engine key, for Extra
}

func (m Mismatch) String() string {
	if m.Kind == Missing {
		return fmt.Sprintf("%s %s: %s", m.Date, m.Kind, m.Official)
	}
	return fmt.Sprintf("%s %s: %s", m.Date, m.Kind, m.Engine)
}

// Compare reports every day in [from, to] on which lookup and entries
// disagree about whether the day is a holiday, in date order. Names are not
// compared: the list uses a single "休日" for all derived holidays.
func Compare(entries []Entry, lookup Lookup, from, to jpholiday.Date) []Mismatch {
	listed := make(map[jpholiday.Date]string, len(entries))
	for _, e := range entries {
		if e.Date.InRange(from, to) {
			listed[e.Date] = e.Name
		}
	}

	var out []Mismatch
	for d := from; !d.After(to); d = d.AddDays(1) {
		name, inList := listed[d]
		h, inEngine := lookup.HolidayOn(d)
		switch {
		case inList && !inEngine:
			out = append(out, Mismatch{Date: d, Kind: Missing, Official: name})
		case inEngine && !inList:
			out = append(out, Mismatch{Date: d, Kind: Extra, Engine: h.Key})
		}
	}
	return out
}
