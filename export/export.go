// Package export writes holiday lists as iCalendar, CSV and JSON.
package export

import (
	"github.com/google/uuid"

	"github.com/rabitt1ove/jpholiday"
)

// namespace seeds the deterministic event UIDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/rabitt1ove/jpholiday"))

// DisplayName returns the name of h in lang. Custom holidays, and an empty
// lang, keep the stored name.
func DisplayName(h jpholiday.Holiday, lang string) string {
	if h.Key == "" || lang == "" {
		return h.Name
	}
	return h.Key.NameFor(lang)
}

func dateOf(h jpholiday.Holiday) jpholiday.Date {
	return jpholiday.DateIn(h.Date, h.Date.Location())
}

// UID returns the stable identifier of h: a UUIDv5 over its date and key,
// or its name for custom holidays.
func UID(h jpholiday.Holiday) string {
	id := string(h.Key)
	if id == "" {
		id = "custom:" + h.Name
	}
	return uuid.NewSHA1(namespace, []byte(dateOf(h).String()+"/"+id)).String()
}
