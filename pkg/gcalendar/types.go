package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA zone, e.g. "Australia/Melbourne"
}

// UpdateEventRequest is the input for patching an existing event. Empty
// Summary keeps the current summary; a zero StartTime keeps the current slot.
type UpdateEventRequest struct {
	CalendarID string
	EventID    string
	Summary    string
	StartTime  time.Time
	EndTime    time.Time
	Timezone   string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
