package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jpholiday"
	"github.com/rabitt1ove/jpholiday/grid"
)

// Weekday header rows, three display columns per cell.
const (
	weekdayHeaderJa = " 日  月  火  水  木  金  土"
	weekdayHeaderEn = " Su  Mo  Tu  We  Th  Fr  Sa"
)

func newMonthCmd() *cobra.Command {
	return LeafCommand{
		Use:   "month [YYYY-MM]",
		Short: "Print a month calendar with holidays marked",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendarFrom(cmd)
			if err != nil {
				return err
			}
			today := cal.DateOf(time.Now())
			year, month := today.Year, today.Month
			if len(args) == 1 {
				t, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q: expected YYYY-MM", args[0])
				}
				year, month = t.Year(), t.Month()
			}
			return runMonth(cmd, cal, langFrom(cmd), year, month)
		},
	}.Build()
}

// calendarHoliday adapts a Calendar, including its custom holidays, to
// grid.HolidayFunc.
func calendarHoliday(cal *jpholiday.Calendar) grid.HolidayFunc {
	return func(d jpholiday.Date) jpholiday.Result {
		h, ok := cal.HolidayOn(d)
		if !ok {
			return jpholiday.Result{}
		}
		return jpholiday.Result{IsHoliday: true, Key: h.Key}
	}
}

func runMonth(cmd *cobra.Command, cal *jpholiday.Calendar, lang string, year int, month time.Month) error {
	m := grid.Build(year, month, nil, calendarHoliday(cal))
	w := cmd.OutOrStdout()

	if strings.HasPrefix(lang, "en") {
		_, _ = fmt.Fprintf(w, "%s %d\n%s\n", m.Month, m.Year, weekdayHeaderEn)
	} else {
		_, _ = fmt.Fprintf(w, "%d年%d月\n%s\n", m.Year, int(m.Month), weekdayHeaderJa)
	}

	for _, week := range m.Weeks {
		for i, day := range week.Days {
			if i > 0 {
				_, _ = io.WriteString(w, " ")
			}
			_, _ = io.WriteString(w, dayCell(day))
		}
		_, _ = io.WriteString(w, "\n")
	}

	for _, day := range m.Holidays() {
		h, _ := cal.HolidayOn(day.Date)
		_, _ = fmt.Fprintf(w, "%2d*  %s\n", day.Date.Day, holidayName(h, lang))
	}
	return nil
}

// dayCell renders one three-column cell; holidays carry a trailing "*".
func dayCell(day grid.Day) string {
	if !day.InMonth {
		return "   "
	}
	if day.Holiday.IsHoliday {
		return Holiday(fmt.Sprintf("%2d*", day.Date.Day))
	}
	text := fmt.Sprintf("%2d ", day.Date.Day)
	switch {
	case day.Date.Weekday() == time.Sunday:
		return Holiday(text)
	case day.Date.Weekday() == time.Saturday:
		return Saturday(text)
	}
	return text
}
