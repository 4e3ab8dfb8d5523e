// Package httpapi serves holidays, business days and month grids over HTTP.
package httpapi

import (
	"encoding/json"
	logger "log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/rabitt1ove/jpholiday"
	"github.com/rabitt1ove/jpholiday/grid"
)

const errServing = "Error serving request"

// Config holds the server settings that are not collaborators.
type Config struct {
	// Lang names holidays when a request has neither ?lang= nor
	// Accept-Language. Empty means Japanese.
	Lang string
	// Auth protects the entry write routes. Nil leaves them open.
	Auth *Auth
}

// Server answers the API requests for one calendar and entry book.
type Server struct {
	log  *logger.Logger
	cal  *jpholiday.Calendar
	book *grid.Book
	cfg  Config
}

// New returns a server. A nil book gets an empty one.
func New(log *logger.Logger, cal *jpholiday.Calendar, book *grid.Book, cfg Config) *Server {
	if book == nil {
		book = grid.NewBook(nil)
	}
	return &Server{log: log, cal: cal, book: book, cfg: cfg}
}

//healthHandler answers liveness checks
type healthHandler struct{}

//ServeHTTP implements healthHandler http.Handler interface
func (h *healthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Add("Application-Status", "OK")
}

// Router returns the routes of the API.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/healthz", &healthHandler{})

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/holidays", s.handleHolidays).Methods(http.MethodGet)
	v1.HandleFunc("/holidays.ics", s.handleICS).Methods(http.MethodGet)
	v1.HandleFunc("/holidays/{date}", s.handleHoliday).Methods(http.MethodGet)
	v1.HandleFunc("/businessdays", s.handleBusinessDays).Methods(http.MethodGet)
	v1.HandleFunc("/calendar/{year:[0-9]+}/{month:[0-9]+}", s.handleMonth).Methods(http.MethodGet)

	v1.HandleFunc("/entries", s.handleEntries).Methods(http.MethodGet)
	v1.Handle("/entries", s.requireAuth(http.HandlerFunc(s.handleAddEntry))).Methods(http.MethodPost)
	v1.Handle("/entries/{tag}", s.requireAuth(http.HandlerFunc(s.handleEditEntry))).Methods(http.MethodPut)
	v1.Handle("/entries/{tag}", s.requireAuth(http.HandlerFunc(s.handleDeleteEntry))).Methods(http.MethodDelete)
	return r
}

// NewHTTPServer wraps handler in an http.Server with the usual timeouts.
func NewHTTPServer(addr string, handler http.Handler, read, write, idle time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		WriteTimeout: write,
		ReadTimeout:  read,
		IdleTimeout:  idle,
		Handler:      handler,
	}
}

// lang picks the naming language: ?lang=, then Accept-Language, then the
// configured default.
func (s *Server) lang(r *http.Request) string {
	if l := r.URL.Query().Get("lang"); l != "" {
		return l
	}
	if l := r.Header.Get("Accept-Language"); l != "" {
		return l
	}
	return s.cfg.Lang
}

// at returns noon of d in the calendar's location, for the time.Time based
// Calendar methods.
func (s *Server) at(d jpholiday.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, s.cal.Location())
}

func (s *Server) today() jpholiday.Date {
	return s.cal.DateOf(time.Now())
}

// queryInt reads an integer query parameter, returning def when it is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

//writeJSON marshals v and writes it with status
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Printf("Error marshaling json response: %v", err)
		http.Error(w, errServing, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.log.Printf("Error writing json response: %s", err)
	}
}
