package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rabitt1ove/jpholiday"
)

// Record is the JSON form of a holiday.
type Record struct {
	Date string        `json:"date"`
	Key  jpholiday.Key `json:"key,omitempty"`
	Name string        `json:"name"`
}

// Records converts holidays to records, naming them in lang (empty keeps the
// Japanese names). It never returns nil.
func Records(holidays []jpholiday.Holiday, lang string) []Record {
	out := make([]Record, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, Record{
			Date: dateOf(h).String(),
			Key:  h.Key,
			Name: DisplayName(h, lang),
		})
	}
	return out
}

// JSONOptions configures WriteJSON.
type JSONOptions struct {
	Lang   string
	Indent bool
}

// WriteJSON writes holidays as a JSON array of records.
func WriteJSON(w io.Writer, holidays []jpholiday.Holiday, opts JSONOptions) error {
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(Records(holidays, opts.Lang)); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}
