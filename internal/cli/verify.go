package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/jpholiday"
	"github.com/rabitt1ove/jpholiday/internal/official"
)

// ErrMismatch is returned by verify when the engine and the published list
// disagree.
var ErrMismatch = errors.New("engine disagrees with the official list")

func newVerifyCmd() *cobra.Command {
	return LeafCommand{
		Use:   "verify",
		Short: "Compare the rule engine with the Cabinet Office holiday list",
		Long: "Downloads syukujitsu.csv from the Cabinet Office (or reads --file) and\n" +
			"reports every day on which it and the rule engine disagree.",
		StrFlags: []StringFlag{
			{Name: "from", Usage: "first date to compare", Default: fmt.Sprintf("%d-01-01", jpholiday.FirstYear)},
			{Name: "to", Usage: "last date to compare (default: last date in the list)"},
			{Name: "file", Usage: "read the list from this file instead of downloading it"},
		},
		BoolFlags: []BoolFlag{
			{Name: "utf8", Usage: "the --file is UTF-8 rather than Shift-JIS"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadOfficial(cmd)
			if err != nil {
				return err
			}
			fromStr, _ := cmd.Flags().GetString("from")
			from, err := jpholiday.ParseDate(fromStr)
			if err != nil {
				return err
			}
			to := lastDate(entries)
			if toStr, _ := cmd.Flags().GetString("to"); toStr != "" {
				if to, err = jpholiday.ParseDate(toStr); err != nil {
					return err
				}
			}
			return runVerify(cmd, entries, jpholiday.New(), from, to)
		},
	}.Build()
}

func loadOfficial(cmd *cobra.Command) ([]official.Entry, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		logger := log.New(cmd.ErrOrStderr(), "verify: ", 0)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return official.NewFetcher(nil, logger).Fetch(ctx)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if utf8, _ := cmd.Flags().GetBool("utf8"); utf8 {
		return official.ParseCSV(f)
	}
	return official.ParseShiftJIS(f)
}

func lastDate(entries []official.Entry) jpholiday.Date {
	var last jpholiday.Date
	for _, e := range entries {
		if e.Date.After(last) {
			last = e.Date
		}
	}
	return last
}

func runVerify(cmd *cobra.Command, entries []official.Entry, lookup official.Lookup, from, to jpholiday.Date) error {
	w := cmd.OutOrStdout()
	if to.Before(from) {
		return fmt.Errorf("nothing to compare: %s is before %s", to, from)
	}

	mismatches := official.Compare(entries, lookup, from, to)
	for _, m := range mismatches {
		_, _ = fmt.Fprintln(w, Error(m.String()))
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%w: %d days between %s and %s", ErrMismatch, len(mismatches), from, to)
	}
	_, _ = fmt.Fprintf(w, "%s %s..%s\n", Primary("ok"), from, to)
	return nil
}
