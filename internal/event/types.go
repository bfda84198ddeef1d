package event

import "github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"

// CreateInput is the input for creating an event.
type CreateInput struct {
	Title       string
	When        string // natural language time range, e.g. "tomorrow 3pm to 5pm"
	Description string
	Location    string
}

// CreateOutput is the result of creating an event.
type CreateOutput struct {
	Event model.Event
}

// ListInput is the input for listing upcoming events.
type ListInput struct {
	Limit int // default 10
}

// ListOutput is the result of listing upcoming events.
type ListOutput struct {
	Events []model.Event
}

// FindInput is the input for searching events by title.
type FindInput struct {
	Query string
	Limit int
}

// FindOutput is the result of an event search.
type FindOutput struct {
	Events []model.Event
}

// UpdateInput modifies the first event whose title matches Query. At least
// one of When and NewTitle must be set; an empty When keeps the current slot
// and an empty NewTitle keeps the current title.
type UpdateInput struct {
	Query    string
	When     string // natural language time range for the new slot
	NewTitle string
}

// UpdateOutput is the result of rescheduling an event.
type UpdateOutput struct {
	Event model.Event
}

// DeleteInput removes the first event whose title matches Query.
type DeleteInput struct {
	Query string
}

// DeleteOutput names the deleted event.
type DeleteOutput struct {
	Title string
}
