// Package tracking contains the pure business logic for the daily tracking
// engine: day keys, rollover, counters, and the snapshot projection.
// No I/O happens here; persistence is the app layer's concern.
package tracking

import "time"

// DateKey identifies a calendar day as "YYYY-MM-DD". It is the unit of
// day-boundary comparison; lexical order equals chronological order.
type DateKey string

const dateKeyLayout = "2006-01-02"

// KeyFor derives the DateKey for the calendar day containing t, in t's
// location.
func KeyFor(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// Valid reports whether k parses as a calendar date.
func (k DateKey) Valid() bool {
	_, err := time.Parse(dateKeyLayout, string(k))
	return err == nil
}
