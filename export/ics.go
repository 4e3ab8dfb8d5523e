package export

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/rabitt1ove/jpholiday"
)

const (
	defaultProductID = "-//rabitt1ove//jpholiday//JA"
	defaultCalName   = "日本の祝日"

	// keyProperty carries the holiday key so ReadICS can restore it.
	keyProperty = ics.ComponentProperty("X-JPHOLIDAY-KEY")
)

// ICSOptions configures WriteICS.
type ICSOptions struct {
	Name      string    // X-WR-CALNAME; defaults to 日本の祝日
	ProductID string    // PRODID
	Lang      string    // BCP 47 tag for event summaries; empty keeps the Japanese names
	Stamp     time.Time // DTSTAMP; defaults to now
}

// WriteICS writes holidays as an iCalendar feed of all-day events.
func WriteICS(w io.Writer, holidays []jpholiday.Holiday, opts ICSOptions) error {
	if opts.Name == "" {
		opts.Name = defaultCalName
	}
	if opts.ProductID == "" {
		opts.ProductID = defaultProductID
	}
	if opts.Stamp.IsZero() {
		opts.Stamp = time.Now()
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(opts.ProductID)
	cal.SetXWRCalName(opts.Name)
	cal.SetXWRTimezone("Asia/Tokyo")

	for _, h := range holidays {
		d := dateOf(h)
		start := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)

		event := cal.AddEvent(UID(h) + "@jpholiday")
		event.SetDtStampTime(opts.Stamp.UTC())
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(DisplayName(h, opts.Lang))
		if h.Key != "" {
			event.SetProperty(keyProperty, string(h.Key))
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing ics: %w", err)
	}
	return nil
}

// ReadICS reads the all-day events of an iCalendar feed back as holidays.
// Events carrying a holiday key get it back; others come back as custom
// holidays named by their summary.
func ReadICS(r io.Reader) ([]jpholiday.Holiday, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing ics: %w", err)
	}

	var out []jpholiday.Holiday
	for _, event := range cal.Events() {
		start, err := event.GetAllDayStartAt()
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", event.Id(), err)
		}
		y, m, day := start.Date()
		h := jpholiday.Holiday{Date: jpholiday.NewDate(y, m, day).Time()}
		if p := event.GetProperty(ics.ComponentPropertySummary); p != nil {
			h.Name = p.Value
		}
		if p := event.GetProperty(keyProperty); p != nil {
			h.Key = jpholiday.Key(p.Value)
		}
		out = append(out, h)
	}
	return out, nil
}
