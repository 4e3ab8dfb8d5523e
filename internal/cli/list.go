package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jpholiday"
)

func newListCmd() *cobra.Command {
	return LeafCommand{
		Use:   "list",
		Short: "List the holidays of a year or month",
		StrFlags: []StringFlag{
			{Name: "year", Usage: "year to list (default: current year)"},
			{Name: "month", Usage: "month to list, 1-12 (default: whole year)"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendarFrom(cmd)
			if err != nil {
				return err
			}
			year, month, err := yearMonthFlags(cmd, cal)
			if err != nil {
				return err
			}
			return runList(cmd, cal, langFrom(cmd), year, month)
		},
	}.Build()
}

// yearMonthFlags reads --year and --month; month is 0 when --month is unset.
func yearMonthFlags(cmd *cobra.Command, cal *jpholiday.Calendar) (int, time.Month, error) {
	yearStr, _ := cmd.Flags().GetString("year")
	monthStr, _ := cmd.Flags().GetString("month")

	year := cal.DateOf(time.Now()).Year
	if yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --year value %q: expected a number", yearStr)
		}
		year = y
	}

	var month time.Month
	if monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid --month value %q: expected 1-12", monthStr)
		}
		month = time.Month(m)
	}
	return year, month, nil
}

func runList(cmd *cobra.Command, cal *jpholiday.Calendar, lang string, year int, month time.Month) error {
	var holidays []jpholiday.Holiday
	if month == 0 {
		holidays = cal.HolidaysInYear(year)
	} else {
		holidays = cal.HolidaysInMonth(year, month)
	}

	w := cmd.OutOrStdout()
	if len(holidays) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no holidays"))
		return nil
	}
	for _, h := range holidays {
		d := jpholiday.DateIn(h.Date, time.UTC)
		_, _ = fmt.Fprintf(w, "%s %s  %s\n", d, Silent(d.Weekday().String()[:3]), holidayName(h, lang))
	}
	return nil
}
