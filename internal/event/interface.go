package event

import (
	"context"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/gcalendar"
)

// UseCase defines the business logic for calendar events.
type UseCase interface {
	// Create resolves the "when" expression in the user's timezone, creates
	// the Google Calendar event, mirrors it locally, and schedules a
	// reminder before the start time.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the user's upcoming events ordered by start time.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Find searches the user's events by title substring.
	Find(ctx context.Context, sc model.Scope, input FindInput) (FindOutput, error)

	// Update reschedules and/or retitles the first event matching the
	// query.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Delete removes the first event matching the query from Google
	// Calendar, the local mirror, and any pending reminders.
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) (DeleteOutput, error)
}

// Calendar is the slice of the Google Calendar client the event domain uses.
// Listing reads the local mirror instead of round-tripping to Google, so only
// the mutating calls appear here.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calID, eventID string) error
}

// CalendarFactory builds a per-user Calendar from the user's stored
// credentials.
type CalendarFactory interface {
	ForUser(ctx context.Context, user model.User) (Calendar, error)
}
