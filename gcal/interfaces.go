package gcal

import (
	"google.golang.org/api/calendar/v3"
)

// CalendarAPI is the narrow calendar surface the sync engine depends on.
type CalendarAPI interface {
	// Get fetches an event by ID. A deleted event surfaces as an error
	// for which IsNotFound returns true.
	Get(calendarID, eventID string) (*calendar.Event, error)
	// Insert creates an event and returns its new ID.
	Insert(calendarID string, body *calendar.Event) (string, error)
	// Patch applies body's fields to an existing event.
	Patch(calendarID, eventID string, body *calendar.Event) error
}
