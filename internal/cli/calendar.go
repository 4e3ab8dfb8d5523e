package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jpholiday"
	"github.com/rabitt1ove/jpholiday/export"
)

// addCalendarFlags registers the flags shared by every command.
func addCalendarFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.String("lang", "ja", "language for holiday names (BCP 47, e.g. ja, en)")
	pf.StringArray("custom", nil, "custom holiday as DATE=NAME (repeatable)")
	pf.StringArray("recurring", nil, "recurring holiday as NAME=RRULE, e.g. 創立記念日=FREQ=YEARLY;BYMONTH=6;BYMONTHDAY=14 (repeatable)")
}

// calendarFrom builds a calendar with the custom and recurring holidays
// given on the command line.
func calendarFrom(cmd *cobra.Command) (*jpholiday.Calendar, error) {
	cal := jpholiday.New()

	customs, _ := cmd.Flags().GetStringArray("custom")
	for _, c := range customs {
		dateStr, name, ok := strings.Cut(c, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --custom value %q: expected DATE=NAME", c)
		}
		d, err := jpholiday.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --custom value %q: %w", c, err)
		}
		cal.AddCustomHoliday(d.Time(), name)
	}

	recurring, _ := cmd.Flags().GetStringArray("recurring")
	for _, r := range recurring {
		name, rule, ok := strings.Cut(r, "=")
		if !ok || name == "" || rule == "" {
			return nil, fmt.Errorf("invalid --recurring value %q: expected NAME=RRULE", r)
		}
		if err := cal.AddRecurringHoliday(rule, name); err != nil {
			return nil, err
		}
	}
	return cal, nil
}

func langFrom(cmd *cobra.Command) string {
	lang, _ := cmd.Flags().GetString("lang")
	return lang
}

func holidayName(h jpholiday.Holiday, lang string) string {
	return export.DisplayName(h, lang)
}
