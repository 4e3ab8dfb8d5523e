package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jpholiday"
	"github.com/rabitt1ove/jpholiday/export"
)

// exportOptions are the settings of one export run.
type exportOptions struct {
	from, to int
	format   string
	lang     string
	sjis     bool
}

func newExportCmd() *cobra.Command {
	return LeafCommand{
		Use:   "export",
		Short: "Export holidays as iCalendar, CSV or JSON",
		StrFlags: []StringFlag{
			{Name: "year", Usage: "first year to export (default: current year)"},
			{Name: "to", Usage: "last year to export (default: --year)"},
			{Name: "format", Usage: "output format: ics, csv or json", Default: "ics"},
			{Name: "output", Usage: "write to this file instead of stdout"},
		},
		BoolFlags: []BoolFlag{
			{Name: "sjis", Usage: "encode CSV output as Shift-JIS"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendarFrom(cmd)
			if err != nil {
				return err
			}
			year, _, err := yearMonthFlags(cmd, cal)
			if err != nil {
				return err
			}
			opts := exportOptions{from: year, to: year, lang: langFrom(cmd)}
			if toStr, _ := cmd.Flags().GetString("to"); toStr != "" {
				to, err := strconv.Atoi(toStr)
				if err != nil {
					return fmt.Errorf("invalid --to value %q: expected a number", toStr)
				}
				opts.to = to
			}
			opts.format, _ = cmd.Flags().GetString("format")
			opts.sjis, _ = cmd.Flags().GetBool("sjis")

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				return runExport(cmd.OutOrStdout(), cal, opts)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := runExport(f, cal, opts); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), Info("wrote "+output))
			return nil
		},
	}.Build()
}

func runExport(w io.Writer, cal *jpholiday.Calendar, opts exportOptions) error {
	if opts.to < opts.from {
		return fmt.Errorf("--to %d is before --year %d", opts.to, opts.from)
	}
	from := time.Date(opts.from, time.January, 1, 0, 0, 0, 0, cal.Location())
	to := time.Date(opts.to, time.December, 31, 0, 0, 0, 0, cal.Location())
	holidays := cal.HolidaysBetween(from, to)

	switch strings.ToLower(opts.format) {
	case "ics", "ical":
		name := "日本の祝日"
		if strings.HasPrefix(opts.lang, "en") {
			name = "Japanese Holidays"
		}
		return export.WriteICS(w, holidays, export.ICSOptions{Name: name, Lang: opts.lang})
	case "csv":
		return export.WriteCSV(w, holidays, export.CSVOptions{ShiftJIS: opts.sjis, Lang: opts.lang})
	case "json":
		return export.WriteJSON(w, holidays, export.JSONOptions{Lang: opts.lang, Indent: true})
	}
	return fmt.Errorf("unknown format %q: expected ics, csv or json", opts.format)
}
