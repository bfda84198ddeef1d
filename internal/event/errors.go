package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrEmptyTitle    = errors.New("event title is empty")
	ErrEmptyWhen     = errors.New("event time expression is empty")
	ErrEmptyQuery    = errors.New("search query is empty")
	ErrNoUpdates     = errors.New("nothing to update")
	ErrNotLinked     = errors.New("no linked Google account")
	ErrEventNotFound = errors.New("no matching event found")
	ErrCalendarSync  = errors.New("failed to sync with Google Calendar")
)
