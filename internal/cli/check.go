package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jpholiday"
)

func newCheckCmd() *cobra.Command {
	return LeafCommand{
		Use:   "check [date...]",
		Short: "Tell whether each date (YYYY-MM-DD, default today) is a holiday",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendarFrom(cmd)
			if err != nil {
				return err
			}
			var dates []jpholiday.Date
			for _, a := range args {
				d, err := jpholiday.ParseDate(a)
				if err != nil {
					return err
				}
				dates = append(dates, d)
			}
			if len(dates) == 0 {
				dates = append(dates, cal.DateOf(time.Now()))
			}
			return runCheck(cmd, cal, langFrom(cmd), dates)
		},
	}.Build()
}

func runCheck(cmd *cobra.Command, cal *jpholiday.Calendar, lang string, dates []jpholiday.Date) error {
	w := cmd.OutOrStdout()
	for _, d := range dates {
		label := fmt.Sprintf("%s (%s)", d, d.Weekday().String()[:3])
		h, ok := cal.HolidayOn(d)
		switch {
		case ok:
			_, _ = fmt.Fprintf(w, "%s  %s\n", label, Holiday(holidayName(h, lang)))
		case d.Weekday() == time.Saturday || d.Weekday() == time.Sunday:
			_, _ = fmt.Fprintf(w, "%s  %s\n", label, Silent("weekend"))
		default:
			_, _ = fmt.Fprintf(w, "%s  %s\n", label, Silent("business day"))
		}
	}
	return nil
}
