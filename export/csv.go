package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/rabitt1ove/jpholiday"
)

var csvHeader = []string{"国民の祝日・休日月日", "国民の祝日・休日名称"}

// CSVOptions configures WriteCSV.
type CSVOptions struct {
	// ShiftJIS encodes the output as Shift-JIS, as the Cabinet Office does.
	ShiftJIS bool
	// Lang is a BCP 47 tag for the names; empty keeps the Japanese names.
	Lang string
}

// WriteCSV writes holidays in the layout of the Cabinet Office list
// (syukujitsu.csv): a header row, then "2024/1/1,元日" rows with CRLF line
// endings.
func WriteCSV(w io.Writer, holidays []jpholiday.Holiday, opts CSVOptions) error {
	if !opts.ShiftJIS {
		return writeCSV(w, holidays, opts.Lang)
	}
	tw := transform.NewWriter(w, japanese.ShiftJIS.NewEncoder())
	if err := writeCSV(tw, holidays, opts.Lang); err != nil {
		tw.Close()
		return err
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("encoding Shift-JIS: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, holidays []jpholiday.Holiday, lang string) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, h := range holidays {
		d := dateOf(h)
		row := []string{fmt.Sprintf("%d/%d/%d", d.Year, int(d.Month), d.Day), DisplayName(h, lang)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %s: %w", d, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
