package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/rabitt1ove/jpholiday"
	"github.com/rabitt1ove/jpholiday/export"
	"github.com/rabitt1ove/jpholiday/grid"
)

// entryJSON is the wire form of a grid entry. A missing style means the
// default style.
type entryJSON struct {
	ID          string      `json:"id,omitempty"`
	Tag         string      `json:"tag"`
	Date        string      `json:"date"`
	LeftLabel   string      `json:"left_label,omitempty"`
	MiddleLabel string      `json:"middle_label,omitempty"`
	Value       string      `json:"value,omitempty"`
	Unit        string      `json:"unit,omitempty"`
	RightLabel  string      `json:"right_label,omitempty"`
	Style       *grid.Style `json:"style,omitempty"`
}

type dayJSON struct {
	Date    string        `json:"date"`
	InMonth bool          `json:"in_month"`
	Holiday bool          `json:"holiday"`
	Key     jpholiday.Key `json:"key,omitempty"`
	Name    string        `json:"name,omitempty"`
	Entries []entryJSON   `json:"entries"`
}

type weekJSON struct {
	Number int       `json:"number"`
	Days   []dayJSON `json:"days"`
}

type monthJSON struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Weeks []weekJSON `json:"weeks"`
}

func toEntryJSON(e grid.Entry) entryJSON {
	style := e.Style
	return entryJSON{
		ID:          e.ID.String(),
		Tag:         e.Tag,
		Date:        e.Date.String(),
		LeftLabel:   e.LeftLabel,
		MiddleLabel: e.MiddleLabel,
		Value:       e.Value,
		Unit:        e.Unit,
		RightLabel:  e.RightLabel,
		Style:       &style,
	}
}

func (j entryJSON) entry() (grid.Entry, error) {
	d, err := jpholiday.ParseDate(j.Date)
	if err != nil {
		return grid.Entry{}, err
	}
	e := grid.NewEntry(j.Tag, d)
	e.LeftLabel = j.LeftLabel
	e.MiddleLabel = j.MiddleLabel
	e.Value = j.Value
	e.Unit = j.Unit
	e.RightLabel = j.RightLabel
	if j.Style != nil {
		e.Style = *j.Style
	}
	if j.ID != "" {
		if e.ID, err = uuid.Parse(j.ID); err != nil {
			return grid.Entry{}, err
		}
	}
	return e, nil
}

// holidayFunc classifies days with the server's calendar, custom holidays
// included.
func (s *Server) holidayFunc(d jpholiday.Date) jpholiday.Result {
	h, ok := s.cal.HolidayOn(d)
	if !ok {
		return jpholiday.Result{}
	}
	return jpholiday.Result{IsHoliday: true, Key: h.Key}
}

// handleMonth answers GET /v1/calendar/{year}/{month} with the six week grid.
func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	lang := s.lang(r)
	m := s.book.Month(year, time.Month(month), s.holidayFunc)
	resp := monthJSON{Year: m.Year, Month: int(m.Month)}
	for _, week := range m.Weeks {
		wj := weekJSON{Number: week.Number, Days: make([]dayJSON, 0, len(week.Days))}
		for _, day := range week.Days {
			dj := dayJSON{
				Date:    day.Date.String(),
				InMonth: day.InMonth,
				Holiday: day.Holiday.IsHoliday,
				Entries: make([]entryJSON, 0, len(day.Entries)),
			}
			if h, ok := s.cal.HolidayOn(day.Date); ok {
				dj.Key = h.Key
				dj.Name = export.DisplayName(h, lang)
			}
			for _, e := range day.Entries {
				dj.Entries = append(dj.Entries, toEntryJSON(e))
			}
			wj.Days = append(wj.Days, dj)
		}
		resp.Weeks = append(resp.Weeks, wj)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleEntries answers GET /v1/entries.
func (s *Server) handleEntries(w http.ResponseWriter, _ *http.Request) {
	entries := s.book.Entries()
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryJSON(e))
	}
	s.writeJSON(w, http.StatusOK, out)
}

// decodeEntry reads an entryJSON body, answering 400 itself on failure.
func decodeEntry(w http.ResponseWriter, r *http.Request) (grid.Entry, bool) {
	var req entryJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return grid.Entry{}, false
	}
	e, err := req.entry()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return grid.Entry{}, false
	}
	return e, true
}

// handleAddEntry answers POST /v1/entries.
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	e, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	if e.Tag == "" {
		http.Error(w, "tag is required", http.StatusBadRequest)
		return
	}
	added, err := s.book.Add(e)
	if errors.Is(err, grid.ErrDuplicateTag) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		s.log.Printf("Error adding entry %q: %v", e.Tag, err)
		http.Error(w, errServing, http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusCreated, toEntryJSON(added))
}

// handleEditEntry answers PUT /v1/entries/{tag}. The tag in the path wins
// over one in the body.
func (s *Server) handleEditEntry(w http.ResponseWriter, r *http.Request) {
	e, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	e.Tag = mux.Vars(r)["tag"]
	if err := s.book.Edit(e); err != nil {
		if errors.Is(err, grid.ErrEntryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.log.Printf("Error editing entry %q: %v", e.Tag, err)
		http.Error(w, errServing, http.StatusInternalServerError)
		return
	}
	updated, _ := s.book.Get(e.Tag)
	s.writeJSON(w, http.StatusOK, toEntryJSON(updated))
}

// handleDeleteEntry answers DELETE /v1/entries/{tag}.
func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]
	if err := s.book.Delete(tag); err != nil {
		if errors.Is(err, grid.ErrEntryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.log.Printf("Error deleting entry %q: %v", tag, err)
		http.Error(w, errServing, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
