package grid

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEntryNotFound is returned when no entry has the given tag.
	ErrEntryNotFound = errors.New("grid: entry not found")
	// ErrDuplicateTag is returned when adding an entry whose tag is taken.
	ErrDuplicateTag = errors.New("grid: duplicate tag")
)

// EntryHandler is notified after a [Book] changes. Calls happen on the
// goroutine that made the change, after the book's lock is released.
type EntryHandler interface {
	EntryAdded(e Entry)
	EntryEdited(old, updated Entry)
	EntryDeleted(e Entry)
}

// HandlerFuncs adapts plain functions to an EntryHandler. Nil fields are
// skipped.
type HandlerFuncs struct {
	Added   func(e Entry)
	Edited  func(old, updated Entry)
	Deleted func(e Entry)
}

func (h HandlerFuncs) EntryAdded(e Entry) {
	if h.Added != nil {
		h.Added(e)
	}
}

func (h HandlerFuncs) EntryEdited(old, updated Entry) {
	if h.Edited != nil {
		h.Edited(old, updated)
	}
}

func (h HandlerFuncs) EntryDeleted(e Entry) {
	if h.Deleted != nil {
		h.Deleted(e)
	}
}

// Book stores calendar entries. It is safe for concurrent use.
type Book struct {
	handler EntryHandler

	mu      sync.RWMutex
	entries []Entry
}

// NewBook returns an empty book reporting changes to handler, which may be nil.
func NewBook(handler EntryHandler) *Book {
	if handler == nil {
		handler = HandlerFuncs{}
	}
	return &Book{handler: handler}
}

// Add stores e, assigning an ID when it has none. Entries with an empty Tag
// can be added any number of times but cannot be edited or deleted.
func (b *Book) Add(e Entry) (Entry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	b.mu.Lock()
	if e.Tag != "" && b.index(e.Tag) >= 0 {
		b.mu.Unlock()
		return Entry{}, fmt.Errorf("%w: %q", ErrDuplicateTag, e.Tag)
	}
	b.entries = append(b.entries, e)
	b.mu.Unlock()

	b.handler.EntryAdded(e)
	return e, nil
}

// Edit replaces the entry with e.Tag by e, keeping its ID.
func (b *Book) Edit(e Entry) error {
	b.mu.Lock()
	i := b.index(e.Tag)
	if e.Tag == "" || i < 0 {
		b.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrEntryNotFound, e.Tag)
	}
	old := b.entries[i]
	e.ID = old.ID
	b.entries[i] = e
	b.mu.Unlock()

	b.handler.EntryEdited(old, e)
	return nil
}

// Delete removes the entry with tag.
func (b *Book) Delete(tag string) error {
	b.mu.Lock()
	i := b.index(tag)
	if tag == "" || i < 0 {
		b.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrEntryNotFound, tag)
	}
	old := b.entries[i]
	b.entries = slices.Delete(b.entries, i, i+1)
	b.mu.Unlock()

	b.handler.EntryDeleted(old)
	return nil
}

// Get returns the entry with tag.
func (b *Book) Get(tag string) (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.index(tag); tag != "" && i >= 0 {
		return b.entries[i], true
	}
	return Entry{}, false
}

// Entries returns a copy of all entries sorted by date, then insertion order.
func (b *Book) Entries() []Entry {
	b.mu.RLock()
	out := slices.Clone(b.entries)
	b.mu.RUnlock()
	slices.SortStableFunc(out, func(x, y Entry) int {
		switch {
		case x.Date.Before(y.Date):
			return -1
		case x.Date.After(y.Date):
			return 1
		}
		return 0
	})
	return out
}

// Month builds the grid for year/month from the book's entries.
func (b *Book) Month(year int, month time.Month, holiday HolidayFunc) Month {
	return Build(year, month, b.Entries(), holiday)
}

// index must be called with b.mu held.
func (b *Book) index(tag string) int {
	return slices.IndexFunc(b.entries, func(e Entry) bool { return e.Tag == tag })
}
