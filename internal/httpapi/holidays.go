package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/rabitt1ove/jpholiday"
	"github.com/rabitt1ove/jpholiday/export"
)

// Range limits for the feeds that evaluate every day they cover.
const (
	maxICSYears         = 10
	maxBusinessDaysSpan = 366 * 10
)

// dayResponse describes one date.
type dayResponse struct {
	Date        string        `json:"date"`
	Weekday     string        `json:"weekday"`
	Holiday     bool          `json:"holiday"`
	Key         jpholiday.Key `json:"key,omitempty"`
	Name        string        `json:"name,omitempty"`
	BusinessDay bool          `json:"business_day"`
}

// businessDaysResponse is the answer of /v1/businessdays.
type businessDaysResponse struct {
	From         string `json:"from"`
	To           string `json:"to"`
	BusinessDays int    `json:"business_days"`
	Next         string `json:"next,omitempty"`
}

// handleHoliday answers GET /v1/holidays/{date}.
func (s *Server) handleHoliday(w http.ResponseWriter, r *http.Request) {
	d, err := jpholiday.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := dayResponse{
		Date:        d.String(),
		Weekday:     d.Weekday().String(),
		BusinessDay: s.cal.IsBusinessDay(s.at(d)),
	}
	if h, ok := s.cal.HolidayOn(d); ok {
		resp.Holiday = true
		resp.Key = h.Key
		resp.Name = export.DisplayName(h, s.lang(r))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleHolidays answers GET /v1/holidays?year=&month= with a JSON list.
// year defaults to the current year; without month the whole year is listed.
func (s *Server) handleHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", s.today().Year)
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := queryInt(r, "month", 0)
	if err != nil || month < 0 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	var holidays []jpholiday.Holiday
	if month == 0 {
		holidays = s.cal.HolidaysInYear(year)
	} else {
		holidays = s.cal.HolidaysInMonth(year, time.Month(month))
	}
	s.writeJSON(w, http.StatusOK, export.Records(holidays, s.lang(r)))
}

// handleICS answers GET /v1/holidays.ics?year=&to= with an iCalendar feed.
func (s *Server) handleICS(w http.ResponseWriter, r *http.Request) {
	from, err := queryInt(r, "year", s.today().Year)
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	to, err := queryInt(r, "to", from)
	if err != nil || to < from {
		http.Error(w, "invalid to", http.StatusBadRequest)
		return
	}
	if to-from >= maxICSYears {
		http.Error(w, fmt.Sprintf("at most %d years per feed", maxICSYears), http.StatusBadRequest)
		return
	}

	lang := s.lang(r)
	holidays := s.cal.HolidaysBetween(
		time.Date(from, time.January, 1, 12, 0, 0, 0, s.cal.Location()),
		time.Date(to, time.December, 31, 12, 0, 0, 0, s.cal.Location()),
	)
	name := "日本の祝日"
	if jpholiday.NewYearsDay.NameFor(lang) != jpholiday.NewYearsDay.Japanese() {
		name = "Japanese Holidays"
	}

	var buf bytes.Buffer
	if err := export.WriteICS(&buf, holidays, export.ICSOptions{Name: name, Lang: lang}); err != nil {
		s.log.Printf("Error writing ics for %d-%d: %v", from, to, err)
		http.Error(w, errServing, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="jpholiday-%d.ics"`, from))
	byteCount, err := w.Write(buf.Bytes())
	if err != nil {
		s.log.Printf("Error writing ics response: %s", err)
		return
	}
	s.log.Printf("wrote %d bytes of ics for %d-%d", byteCount, from, to)
}

// handleBusinessDays answers GET /v1/businessdays?from=&to= with the count of
// business days in the inclusive range and the first business day after it.
func (s *Server) handleBusinessDays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("from") == "" || q.Get("to") == "" {
		http.Error(w, "from and to are required", http.StatusBadRequest)
		return
	}
	from, err := jpholiday.ParseDate(strings.TrimSpace(q.Get("from")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := jpholiday.ParseDate(strings.TrimSpace(q.Get("to")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if to.Before(from) {
		http.Error(w, "to is before from", http.StatusBadRequest)
		return
	}
	if to.After(from.AddDays(maxBusinessDaysSpan - 1)) {
		http.Error(w, fmt.Sprintf("at most %d days per request", maxBusinessDaysSpan), http.StatusBadRequest)
		return
	}

	resp := businessDaysResponse{
		From:         from.String(),
		To:           to.String(),
		BusinessDays: s.cal.BusinessDaysBetween(s.at(from), s.at(to)),
	}
	if next := s.cal.NextBusinessDay(s.at(to.AddDays(1))); !next.IsZero() {
		resp.Next = jpholiday.DateIn(next, time.UTC).String()
	}
	s.writeJSON(w, http.StatusOK, resp)
}
